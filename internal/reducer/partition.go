package reducer

// StrideRows returns the rows owned by worker out of workers for an n-row
// matrix: worker, worker+workers, worker+2*workers, ... below n. A worker whose
// id is not below n owns nothing.
func StrideRows(worker, workers, n int) []int {
	if workers <= 0 || worker < 0 || worker >= n {
		return nil
	}
	rows := make([]int, 0, (n-worker+workers-1)/workers)
	for r := worker; r < n; r += workers {
		rows = append(rows, r)
	}
	return rows
}

// Assignment returns StrideRows for every worker id in [0, workers).
func Assignment(workers, n int) [][]int {
	out := make([][]int, workers)
	for w := range workers {
		out[w] = StrideRows(w, workers, n)
	}
	return out
}

// Owner returns the worker that owns row r.
func Owner(r, workers int) int {
	return r % workers
}
