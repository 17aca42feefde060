package database

import (
	"context"
	"fmt"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type document[T any] interface {
	*T
	SetID(string)
}

// queryAll runs q and decodes every snapshot into T, stamping the
// store-assigned document id onto each value.
func queryAll[T any, PT document[T]](ctx context.Context, q fs.Query) ([]*T, error) {
	snaps, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("queryAll: unable to get documents: %w", err)
	}
	out := make([]*T, len(snaps))
	for i, snap := range snaps {
		var val T
		if err := snap.DataTo(&val); err != nil {
			return nil, fmt.Errorf("queryAll: unable to create type %T from doc %s: %w", val, snap.Ref.ID, err)
		}
		PT(&val).SetID(snap.Ref.ID)
		out[i] = &val
	}
	return out, nil
}

// queryOne runs q limited to a single document. A miss is (nil, nil),
// not an error: callers decide whether absence is exceptional.
func queryOne[T any, PT document[T]](ctx context.Context, q fs.Query) (*T, error) {
	docs, err := queryAll[T, PT](ctx, q.Limit(1))
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}

// getDoc fetches one document by ref. A miss is (nil, nil).
func getDoc[T any, PT document[T]](ctx context.Context, ref *fs.DocumentRef) (*T, error) {
	snap, err := ref.Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getDoc: unable to get document %s: %w", ref.ID, err)
	}
	var val T
	if err := snap.DataTo(&val); err != nil {
		return nil, fmt.Errorf("getDoc: unable to create type %T from doc %s: %w", val, ref.ID, err)
	}
	PT(&val).SetID(ref.ID)
	return &val, nil
}

// addDoc writes val to a fresh document in col and returns the assigned id.
func addDoc(ctx context.Context, col *fs.CollectionRef, val any) (string, error) {
	ref := col.NewDoc()
	if _, err := ref.Set(ctx, val); err != nil {
		return "", fmt.Errorf("addDoc: unable to create document in %s: %w", col.ID, err)
	}
	return ref.ID, nil
}

// mergeDoc writes only the given fields, leaving the rest of the
// document untouched.
func mergeDoc(ctx context.Context, ref *fs.DocumentRef, fields map[string]any) error {
	if _, err := ref.Set(ctx, fields, fs.MergeAll); err != nil {
		return fmt.Errorf("mergeDoc: unable to merge document %s: %w", ref.ID, err)
	}
	return nil
}

// deleteDoc removes a document. Deleting a missing document succeeds.
func deleteDoc(ctx context.Context, ref *fs.DocumentRef) error {
	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("deleteDoc: unable to delete document %s: %w", ref.ID, err)
	}
	return nil
}

// IsNotFound reports whether err is the store's not-found condition.
func IsNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
