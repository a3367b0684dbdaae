package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/noteflowhq/noteflow/internal/logger"
	"github.com/noteflowhq/noteflow/internal/model"
)

type firestoreStore struct {
	client     *firestore.Client
	collection string
	logger     logger.Logger
}

// NewFirestore creates a Firestore-backed Store. The client is
// pre-authenticated through application default credentials; this package
// never loads credential files itself.
func NewFirestore(ctx context.Context, projectID, collection string, log logger.Logger) (Store, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("%w: create firestore client: %v", model.ErrStoreUnavailable, err)
	}

	return &firestoreStore{
		client:     client,
		collection: collection,
		logger:     log,
	}, nil
}

func (s *firestoreStore) Save(ctx context.Context, audioName, transcription, summary string) (time.Time, error) {
	wr, err := s.client.Collection(s.collection).Doc(audioName).Set(ctx, map[string]interface{}{
		"audio_name":    audioName,
		"transcription": transcription,
		"summary":       summary,
		"timestamp":     firestore.ServerTimestamp,
	})
	if err != nil {
		return time.Time{}, classify(fmt.Errorf("save %s: %w", audioName, err))
	}

	s.logger.Debug(ctx, "Saved record %s (%d chars transcript)", audioName, len(transcription))
	// The write's update time is the same server clock that fills the
	// timestamp sentinel field.
	return wr.UpdateTime, nil
}

func (s *firestoreStore) FetchAll(ctx context.Context) ([]model.NotesRecord, error) {
	iter := s.client.Collection(s.collection).OrderBy("timestamp", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	records := make([]model.NotesRecord, 0)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, classify(fmt.Errorf("fetch records: %w", err))
		}

		var rec model.NotesRecord
		if err := doc.DataTo(&rec); err != nil {
			return nil, fmt.Errorf("decode record %s: %w", doc.Ref.ID, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// classify maps transport-level failures onto ErrStoreUnavailable so
// callers can report them without inspecting gRPC codes.
func classify(err error) error {
	switch status.Code(err) {
	case codes.Unavailable, codes.Unauthenticated, codes.PermissionDenied, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %w", model.ErrStoreUnavailable, err)
	}
	return err
}
