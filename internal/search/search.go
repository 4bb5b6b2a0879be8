// Package search looks up employee records in the assistant's MongoDB
// mirror of the HR directory. The mirror is optional: a nil *Service is a
// valid value and every lookup on it degrades to a miss.
package search

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/talenthive/hr-assistant-go/internal/domain/employee"
	"github.com/talenthive/hr-assistant-go/internal/domain/query"
)

const defaultLimit = 10

type Config struct {
	URI        string
	Database   string
	Collection string
}

type Service struct {
	collection *mongo.Collection
	client     *mongo.Client
	logger     *slog.Logger
}

// NewService connects to the directory mirror. Callers should treat a
// connection failure as a degraded mode, not a fatal error.
func NewService(ctx context.Context, cfg Config, logger *slog.Logger) (*Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Service{
		collection: client.Database(cfg.Database).Collection(cfg.Collection),
		client:     client,
		logger:     logger,
	}, nil
}

// NewServiceFromCollection wires an existing collection, used in tests.
func NewServiceFromCollection(col *mongo.Collection, logger *slog.Logger) *Service {
	return &Service{collection: col, logger: logger}
}

func (s *Service) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// Available reports whether the directory mirror can serve lookups.
func (s *Service) Available() bool {
	return s != nil && s.collection != nil
}

// directoryDoc mirrors the employee documents stored upstream.
type directoryDoc struct {
	ID           string `bson:"_id"`
	UserName     string `bson:"userName"`
	FirstName    string `bson:"firstName"`
	LastName     string `bson:"lastName"`
	Role         string `bson:"role"`
	EmployeeInfo []struct {
		EmployeeID     string `bson:"empId"`
		Grade          string `bson:"grade"`
		Designation    string `bson:"designation"`
		DepartmentName string `bson:"depName"`
		DepartmentID   string `bson:"depId"`
		BranchID       string `bson:"branchId"`
		CompanyID      string `bson:"companyId"`
		OrganizationID string `bson:"orgId"`
	} `bson:"employeeInfo"`
}

func (d directoryDoc) toRecord() employee.Record {
	rec := employee.Record{
		ID:        d.ID,
		UserName:  d.UserName,
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Role:      d.Role,
	}
	if len(d.EmployeeInfo) > 0 {
		info := d.EmployeeInfo[0]
		rec.EmployeeID = info.EmployeeID
		rec.Grade = employee.Grade(info.Grade)
		rec.Position = info.Designation
		rec.DepartmentID = info.DepartmentID
		rec.BranchID = info.BranchID
		rec.CompanyID = info.CompanyID
		rec.OrganizationID = info.OrganizationID
	}
	if rec.EmployeeID == "" {
		rec.EmployeeID = d.UserName
	}
	return rec
}

// ByID finds one employee by exact id, checking every field an id may
// live in.
func (s *Service) ByID(ctx context.Context, employeeID string) (*employee.Record, error) {
	if !s.Available() {
		return nil, employee.ErrEmployeeNotFound
	}

	filter := bson.M{"$or": bson.A{
		bson.M{"userName": employeeID},
		bson.M{"employeeInfo.empId": employeeID},
		bson.M{"_id": employeeID},
	}}

	var doc directoryDoc
	err := s.collection.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, employee.ErrEmployeeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find employee %s: %w", employeeID, err)
	}
	rec := doc.toRecord()
	return &rec, nil
}

// ByText runs a full text search, falling back to case-insensitive regex
// matching on the common fields when no text index exists.
func (s *Service) ByText(ctx context.Context, text string, limit int) ([]employee.Record, error) {
	if !s.Available() {
		return nil, nil
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	if recs, err := s.find(ctx, bson.M{"$text": bson.M{"$search": text}}, limit); err == nil && len(recs) > 0 {
		return recs, nil
	}

	regex := bson.M{"$regex": text, "$options": "i"}
	filter := bson.M{"$or": bson.A{
		bson.M{"firstName": regex},
		bson.M{"lastName": regex},
		bson.M{"userName": regex},
		bson.M{"role": regex},
		bson.M{"employeeInfo.depName": regex},
		bson.M{"employeeInfo.designation": regex},
	}}
	return s.find(ctx, filter, limit)
}

// ByCriteria searches with the structured parameters the interpreter
// extracted.
func (s *Service) ByCriteria(ctx context.Context, params query.Params, limit int) ([]employee.Record, error) {
	if !s.Available() {
		return nil, nil
	}
	if limit <= 0 {
		limit = defaultLimit
	}

	filter := bson.M{}

	if params.Name != "" {
		first, last, multi := splitName(params.Name)
		if multi {
			filter["$and"] = bson.A{
				bson.M{"firstName": bson.M{"$regex": first, "$options": "i"}},
				bson.M{"lastName": bson.M{"$regex": last, "$options": "i"}},
			}
		} else {
			filter["$or"] = bson.A{
				bson.M{"firstName": bson.M{"$regex": first, "$options": "i"}},
				bson.M{"lastName": bson.M{"$regex": first, "$options": "i"}},
			}
		}
	}
	if params.Department != "" {
		filter["employeeInfo.depName"] = bson.M{"$regex": params.Department, "$options": "i"}
	}
	if params.Role != "" {
		filter["role"] = bson.M{"$regex": params.Role, "$options": "i"}
	}
	if params.Grade != "" {
		filter["employeeInfo.grade"] = params.Grade
	}
	if params.EmployeeID != "" {
		filter["$or"] = bson.A{
			bson.M{"userName": params.EmployeeID},
			bson.M{"employeeInfo.empId": params.EmployeeID},
		}
	}
	if len(filter) == 0 {
		return nil, nil
	}

	return s.find(ctx, filter, limit)
}

func (s *Service) find(ctx context.Context, filter bson.M, limit int) ([]employee.Record, error) {
	cursor, err := s.collection.Find(ctx, filter, options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, fmt.Errorf("failed to search employees: %w", err)
	}
	defer cursor.Close(ctx)

	var records []employee.Record
	for cursor.Next(ctx) {
		var doc directoryDoc
		if err := cursor.Decode(&doc); err != nil {
			s.logger.Debug("skipping undecodable directory document", slog.Any("error", err))
			continue
		}
		records = append(records, doc.toRecord())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate search results: %w", err)
	}
	return records, nil
}

func splitName(name string) (first, last string, multi bool) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", "", false
	case 1:
		return parts[0], "", false
	default:
		return parts[0], parts[len(parts)-1], true
	}
}
