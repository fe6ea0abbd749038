package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"focusos/models"
)

// ErrNotFound is returned when an entry does not exist or belongs to
// a different owner.
var ErrNotFound = errors.New("entry not found")

// EntryStore persists one entry per (owner, date).
type EntryStore interface {
	// UpsertMerge creates the day's entry if absent, otherwise merges
	// sessions by (category, subCategory) match and overwrites notes
	// when non-empty. Atomic per (owner, date): concurrent submissions
	// for the same day both land.
	UpsertMerge(ctx context.Context, owner, date string, sessions []models.Session, notes string) (*models.Entry, error)
	// Replace overwrites the session list and notes of an existing
	// entry, for manual corrections.
	Replace(ctx context.Context, owner, entryID string, sessions []models.Session, notes string) (*models.Entry, error)
	// ListAll returns every entry for the owner in unspecified order.
	ListAll(ctx context.Context, owner string) ([]models.Entry, error)
	// DeleteByID removes an entry owned by owner.
	DeleteByID(ctx context.Context, owner, entryID string) error
}

// mergeRetries bounds the optimistic-merge loop. Contention on a
// single user's single day is two timer commits at worst.
const mergeRetries = 5

// MongoEntryStore is the MongoDB-backed EntryStore.
type MongoEntryStore struct {
	coll *mongo.Collection
}

// NewMongoEntryStore sets up the entries collection and its unique
// (owner, date) index, the constraint behind one-entry-per-day.
func NewMongoEntryStore(ctx context.Context, db *mongo.Database) (*MongoEntryStore, error) {
	coll := db.Collection("entries")
	_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "owner", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create entries index: %w", err)
	}
	return &MongoEntryStore{coll: coll}, nil
}

func (s *MongoEntryStore) UpsertMerge(ctx context.Context, owner, date string, sessions []models.Session, notes string) (*models.Entry, error) {
	for attempt := 0; attempt < mergeRetries; attempt++ {
		var existing models.Entry
		err := s.coll.FindOne(ctx, bson.M{"owner": owner, "date": date}).Decode(&existing)
		if err == mongo.ErrNoDocuments {
			entry := models.Entry{
				ID:       primitive.NewObjectID(),
				Owner:    owner,
				Date:     date,
				Sessions: models.NormalizeSessions(sessions),
				Notes:    notes,
				Rev:      1,
			}
			_, err = s.coll.InsertOne(ctx, entry)
			if mongo.IsDuplicateKeyError(err) {
				// Another writer created the day first; merge into it.
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("insert entry: %w", err)
			}
			return &entry, nil
		}
		if err != nil {
			return nil, fmt.Errorf("find entry: %w", err)
		}

		merged := models.MergeSessions(existing.Sessions, sessions)
		set := bson.M{"sessions": merged}
		if notes != "" {
			set["notes"] = notes
		}
		res, err := s.coll.UpdateOne(ctx,
			bson.M{"_id": existing.ID, "rev": existing.Rev},
			bson.M{"$set": set, "$inc": bson.M{"rev": 1}},
		)
		if err != nil {
			return nil, fmt.Errorf("merge entry: %w", err)
		}
		if res.MatchedCount == 0 {
			// Lost the race against a concurrent merge; reread and retry.
			continue
		}

		existing.Sessions = merged
		if notes != "" {
			existing.Notes = notes
		}
		existing.Rev++
		return &existing, nil
	}
	return nil, fmt.Errorf("upsert entry for %s: retries exhausted", date)
}

func (s *MongoEntryStore) Replace(ctx context.Context, owner, entryID string, sessions []models.Session, notes string) (*models.Entry, error) {
	id, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return nil, ErrNotFound
	}

	after := options.After
	res := s.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "owner": owner},
		bson.M{
			"$set": bson.M{"sessions": models.NormalizeSessions(sessions), "notes": notes},
			"$inc": bson.M{"rev": 1},
		},
		options.FindOneAndUpdate().SetReturnDocument(after),
	)
	var entry models.Entry
	if err := res.Decode(&entry); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("replace entry: %w", err)
	}
	return &entry, nil
}

func (s *MongoEntryStore) ListAll(ctx context.Context, owner string) ([]models.Entry, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"owner": owner})
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer cursor.Close(ctx)

	entries := make([]models.Entry, 0)
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	return entries, nil
}

func (s *MongoEntryStore) DeleteByID(ctx context.Context, owner, entryID string) error {
	id, err := primitive.ObjectIDFromHex(entryID)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id, "owner": owner})
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

var _ EntryStore = (*MongoEntryStore)(nil)
