package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meridian-trust/staff-portal/internal/core/domain"
)

const attemptsCollection = "login_attempts"

// AuditRepository is the append-only login-attempt trail. Each Append is a
// single InsertOne, so every record is written atomically; nothing in this
// repository updates or deletes.
type AuditRepository struct {
	coll *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{coll: db.Collection(attemptsCollection)}
}

type mongoAttempt struct {
	Username    string `bson:"username"`
	AttemptedAt int64  `bson:"attempted_at"`
	Success     bool   `bson:"success"`
	SourceIP    string `bson:"source_ip"`
	UserAgent   string `bson:"user_agent"`
}

func (r *AuditRepository) Append(ctx context.Context, attempt domain.LoginAttempt) error {
	doc := mongoAttempt{
		Username:    attempt.Username,
		AttemptedAt: attempt.AttemptedAt.UnixNano(),
		Success:     attempt.Success,
		SourceIP:    attempt.SourceIP,
		UserAgent:   attempt.UserAgent,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("append login attempt: %w", err)
	}
	return nil
}

func (r *AuditRepository) Recent(ctx context.Context, limit int) ([]domain.LoginAttempt, error) {
	return r.find(ctx, bson.M{}, limit)
}

func (r *AuditRepository) RecentForUser(ctx context.Context, username string, limit int) ([]domain.LoginAttempt, error) {
	return r.find(ctx, bson.M{"username": username}, limit)
}

func (r *AuditRepository) find(ctx context.Context, filter bson.M, limit int) ([]domain.LoginAttempt, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "attempted_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find login attempts: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoAttempt
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode login attempts: %w", err)
	}

	attempts := make([]domain.LoginAttempt, 0, len(docs))
	for _, doc := range docs {
		attempts = append(attempts, domain.LoginAttempt{
			Username:    doc.Username,
			AttemptedAt: nanosToTime(doc.AttemptedAt),
			Success:     doc.Success,
			SourceIP:    doc.SourceIP,
			UserAgent:   doc.UserAgent,
		})
	}
	return attempts, nil
}

func nanosToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(0, ts).UTC()
}
