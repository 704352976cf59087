package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"corruptx/internal/domain/entity"
	"corruptx/internal/domain/repository"
	"corruptx/pkg/errors"
)

type firestoreAssignmentRepository struct {
	client *firestore.Client
}

func NewFirestoreAssignmentRepository(client *firestore.Client) repository.ReporterAssignmentRepository {
	return &firestoreAssignmentRepository{
		client: client,
	}
}

func (r *firestoreAssignmentRepository) Create(ctx context.Context, assignment *entity.ReporterAssignment) error {
	if assignment.ID == "" {
		doc := r.client.Collection("reporter_assignments").NewDoc()
		assignment.ID = doc.ID
	}

	if assignment.CreatedAt.IsZero() {
		assignment.CreatedAt = time.Now()
	}
	if assignment.Status == "" {
		assignment.Status = entity.AssignmentStatusNotified
	}

	_, err := r.client.Collection("reporter_assignments").Doc(assignment.ID).Set(ctx, assignment)
	if err != nil {
		return errors.Internal("Failed to create assignment", err)
	}

	return nil
}

func (r *firestoreAssignmentRepository) GetByID(ctx context.Context, id string) (*entity.ReporterAssignment, error) {
	doc, err := r.client.Collection("reporter_assignments").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Assignment", err)
		}
		return nil, errors.Internal("Failed to get assignment", err)
	}

	var assignment entity.ReporterAssignment
	if err := doc.DataTo(&assignment); err != nil {
		return nil, errors.Internal("Failed to parse assignment data", err)
	}

	return &assignment, nil
}

func (r *firestoreAssignmentRepository) ListByReporter(ctx context.Context, reporterID, assignmentStatus string) ([]*entity.ReporterAssignment, error) {
	query := r.client.Collection("reporter_assignments").
		Where("reporterId", "==", reporterID)
	if assignmentStatus != "" {
		query = query.Where("status", "==", assignmentStatus)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var assignments []*entity.ReporterAssignment

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate assignments", err)
		}
		var assignment entity.ReporterAssignment
		if err := doc.DataTo(&assignment); err != nil {
			return nil, errors.Internal("Failed to parse assignment data", err)
		}
		assignments = append(assignments, &assignment)
	}

	return assignments, nil
}

func (r *firestoreAssignmentRepository) UpdateStatus(ctx context.Context, id, assignmentStatus string) error {
	_, err := r.client.Collection("reporter_assignments").Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: assignmentStatus},
	})
	if err != nil {
		return errors.Internal("Failed to update assignment status", err)
	}

	return nil
}
