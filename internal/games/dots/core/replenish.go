package core

import "time"

// ColumnState describes a column during replenishment.
type ColumnState int

const (
	ColumnIdle     ColumnState = iota // Nothing scheduled
	ColumnSpawning                    // Waves remaining
)

// String returns the string representation of a column state.
func (s ColumnState) String() string {
	switch s {
	case ColumnIdle:
		return "idle"
	case ColumnSpawning:
		return "spawning"
	default:
		return "unknown"
	}
}

// replenishJob refills columns in successive waves.
// Wave w spawns a tile at logical row w in every column whose count is at
// least waves-w, so the fullest column starts first and every column ends on
// the last wave.
type replenishJob struct {
	counts  []int
	exclude ColorID
	waves   int // max(counts)
	wave    int // next wave to emit
	elapsed time.Duration
}

func (j *replenishJob) done() bool {
	return j.wave >= j.waves
}

// remaining returns how many tiles column col still has to receive.
func (j *replenishJob) remaining(col int) int {
	if col < 0 || col >= len(j.counts) {
		return 0
	}
	left := j.waves - j.wave
	if j.counts[col] < left {
		return j.counts[col]
	}
	return left
}

// Replenish schedules counts[col] new tiles per column, colored at random
// excluding exclude (NoColor excludes nothing). The first wave is emitted
// immediately; later waves follow every WaveDelay, or on AdvanceReplenishWave.
// Jobs started while others are running interleave their waves.
func (b *Board) Replenish(counts []int, exclude ColorID) {
	job := &replenishJob{
		counts:  make([]int, b.cfg.Width),
		exclude: exclude,
	}
	for col := 0; col < b.cfg.Width && col < len(counts); col++ {
		if counts[col] > 0 {
			job.counts[col] = counts[col]
		}
		if job.counts[col] > job.waves {
			job.waves = job.counts[col]
		}
	}
	if job.waves == 0 {
		return
	}

	b.emitWave(job)
	if !job.done() {
		b.jobs = append(b.jobs, job)
	}
}

// Fill schedules a full board: Height tiles per column, row by row.
func (b *Board) Fill() {
	counts := make([]int, b.cfg.Width)
	for col := range counts {
		counts[col] = b.cfg.Height
	}
	b.Replenish(counts, NoColor)
}

// AdvanceReplenishWave emits the next wave of every running job without
// waiting for the wave delay. Returns the number of tiles spawned.
func (b *Board) AdvanceReplenishWave() int {
	spawned := 0
	for _, job := range b.jobs {
		spawned += b.emitWave(job)
		job.elapsed = 0
	}
	b.dropFinishedJobs()
	return spawned
}

// ColumnState reports whether col still has waves pending and how many
// tiles it has yet to receive across all running jobs.
func (b *Board) ColumnState(col int) (ColumnState, int) {
	total := 0
	for _, job := range b.jobs {
		total += job.remaining(col)
	}
	if total == 0 {
		return ColumnIdle, 0
	}
	return ColumnSpawning, total
}

// PendingWaves returns the number of waves left in the longest running job.
func (b *Board) PendingWaves() int {
	most := 0
	for _, job := range b.jobs {
		if left := job.waves - job.wave; left > most {
			most = left
		}
	}
	return most
}

// updateJobs emits the waves that became due during dt.
func (b *Board) updateJobs(dt time.Duration) {
	if len(b.jobs) == 0 {
		return
	}
	for _, job := range b.jobs {
		if b.cfg.WaveDelay <= 0 {
			for !job.done() {
				b.emitWave(job)
			}
			continue
		}
		job.elapsed += dt
		for job.elapsed >= b.cfg.WaveDelay && !job.done() {
			job.elapsed -= b.cfg.WaveDelay
			b.emitWave(job)
		}
	}
	b.dropFinishedJobs()
}

// emitWave spawns the job's next wave and returns the number of tiles spawned.
// A column whose color pick fails is skipped for that wave.
func (b *Board) emitWave(job *replenishJob) int {
	if job.done() {
		return 0
	}
	threshold := job.waves - job.wave
	spawned := 0
	for col, count := range job.counts {
		if count < threshold {
			continue
		}
		color, ok := b.picker.Pick(job.exclude)
		if !ok {
			continue
		}
		b.spawn(col, job.wave, color)
		spawned++
	}
	job.wave++
	return spawned
}

func (b *Board) dropFinishedJobs() {
	keep := b.jobs[:0]
	for _, job := range b.jobs {
		if !job.done() {
			keep = append(keep, job)
		}
	}
	b.jobs = keep
}
