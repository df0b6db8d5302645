package pqueue

const (
	ERR_NO_CHILDREN = "ERROR: left = %d, right = %d are both out of bounds for length = %d."
)
