package inventory

import "github.com/teranos/brickxml/errors"

// Partition cuts items into consecutive chunks of at most size elements.
// The last chunk may be shorter; no items yields no chunks.
func Partition[T any](items []T, size int) ([][]T, error) {
	if size < 1 {
		return nil, errors.WithHint(
			errors.NewInvalidRequestError("chunk size must be at least 1, got %d", size),
			"pass --max 1 or greater")
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end:end])
	}
	return chunks, nil
}
