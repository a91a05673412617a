package mongo

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/meridian-trust/staff-portal/internal/core/domain"
)

const staffCollection = "staff_directory"

// StaffRepository serves the internal directory lookup page.
type StaffRepository struct {
	coll *mongo.Collection
}

func NewStaffRepository(db *mongo.Database) *StaffRepository {
	return &StaffRepository{coll: db.Collection(staffCollection)}
}

type mongoStaffMember struct {
	FullName   string `bson:"full_name"`
	Email      string `bson:"email"`
	Department string `bson:"department"`
	RoleTitle  string `bson:"role_title"`
	Phone      string `bson:"phone"`
}

// SearchByName matches full names by case-insensitive substring. The query is
// quoted before it reaches the filter, so user input can never change the
// shape of the expression.
func (r *StaffRepository) SearchByName(ctx context.Context, query string, limit int) ([]domain.StaffMember, error) {
	filter := bson.M{"full_name": primitive.Regex{
		Pattern: regexp.QuoteMeta(query),
		Options: "i",
	}}
	opts := options.Find().
		SetSort(bson.D{{Key: "full_name", Value: 1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("search staff directory: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoStaffMember
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode staff directory: %w", err)
	}

	members := make([]domain.StaffMember, 0, len(docs))
	for _, doc := range docs {
		members = append(members, domain.StaffMember{
			FullName:   doc.FullName,
			Email:      doc.Email,
			Department: doc.Department,
			RoleTitle:  doc.RoleTitle,
			Phone:      doc.Phone,
		})
	}
	return members, nil
}
