package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"chainmart/pkg/errors"
)

// deleteAll removes every document matched by the query and returns
// the count. An empty match set is a vacuous success.
func deleteAll(ctx context.Context, query firestore.Query, what string) (int64, error) {
	iter := query.Documents(ctx)
	var count int64

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return count, errors.Internal("Failed to iterate "+what, err)
		}

		if _, err := doc.Ref.Delete(ctx); err != nil {
			return count, errors.Internal("Failed to delete "+what, err)
		}
		count++
	}

	return count, nil
}

// updateAll applies the same field-set to every document matched by
// the query and returns the count.
func updateAll(ctx context.Context, query firestore.Query, updates []firestore.Update, what string) (int64, error) {
	iter := query.Documents(ctx)
	var count int64

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return count, errors.Internal("Failed to iterate "+what, err)
		}

		if _, err := doc.Ref.Update(ctx, updates); err != nil {
			return count, errors.Internal("Failed to update "+what, err)
		}
		count++
	}

	return count, nil
}
