package logic

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// check validates share files and reports whether they form a quorum.
func (r *Runner) check() error {
	collection, err := r.loadShares(uuid.Nil)
	if err != nil {
		return err
	}

	indices := make([]string, 0, len(collection.Shares))
	for _, index := range collection.Indices() {
		indices = append(indices, strconv.Itoa(index))
	}

	quorum := "yes"
	if !collection.Quorum() {
		quorum = fmt.Sprintf("no, %d more needed", collection.Missing())
	}

	fmt.Fprintf(r.out, "Set:       %s\n", collection.SetID)
	fmt.Fprintf(r.out, "Threshold: %d\n", collection.Threshold)
	fmt.Fprintf(r.out, "Total:     %d\n", collection.Total)
	fmt.Fprintf(r.out, "Present:   %s\n", strings.Join(indices, ", "))
	fmt.Fprintf(r.out, "Quorum:    %s\n", quorum)

	if !collection.Quorum() {
		return fmt.Errorf("%w: %d of %d shares present", ErrNoQuorum, len(collection.Shares), collection.Threshold)
	}

	return nil
}
