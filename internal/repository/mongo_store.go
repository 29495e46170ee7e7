package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iliyamo/villa-booking/internal/model"
)

// Collection names in the document store.
const (
	ReservationsCollection = "reservations"
	BlocagesCollection     = "blocages"
)

// MongoReservationStore keeps reservations as flat documents keyed by the
// "id" field.  Mongo's own _id never leaves this type: decoding into
// model.ReservationRow ignores it.
type MongoReservationStore struct {
	coll *mongo.Collection
}

func NewMongoReservationStore(db *mongo.Database) *MongoReservationStore {
	return &MongoReservationStore{coll: db.Collection(ReservationsCollection)}
}

func (s *MongoReservationStore) Create(ctx context.Context, r model.Reservation) error {
	if _, err := s.coll.InsertOne(ctx, r.Row()); err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

func (s *MongoReservationStore) GetByID(ctx context.Context, id string) (model.Reservation, error) {
	var row model.ReservationRow
	err := s.coll.FindOne(ctx, bson.M{"id": id}).Decode(&row)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return model.Reservation{}, ErrNotFound
	}
	if err != nil {
		return model.Reservation{}, fmt.Errorf("find reservation: %w", err)
	}
	return row.Reservation()
}

func (s *MongoReservationStore) List(ctx context.Context) ([]model.Reservation, error) {
	return s.find(ctx, bson.M{})
}

func (s *MongoReservationStore) ListActive(ctx context.Context) ([]model.Reservation, error) {
	return s.find(ctx, bson.M{"payment_status": bson.M{"$ne": string(model.StatusCancelled)}})
}

func (s *MongoReservationStore) Stats(ctx context.Context) (model.Stats, error) {
	var (
		st  model.Stats
		err error
	)
	if st.Total, err = s.coll.CountDocuments(ctx, bson.M{}); err != nil {
		return model.Stats{}, fmt.Errorf("count reservations: %w", err)
	}
	if st.Confirmed, err = s.coll.CountDocuments(ctx, bson.M{"payment_status": string(model.StatusComplete)}); err != nil {
		return model.Stats{}, fmt.Errorf("count confirmed: %w", err)
	}
	if st.Pending, err = s.coll.CountDocuments(ctx, bson.M{"payment_status": string(model.StatusPending)}); err != nil {
		return model.Stats{}, fmt.Errorf("count pending: %w", err)
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"payment_status": bson.M{"$in": bson.A{string(model.StatusComplete), string(model.StatusPartial)}}}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "revenue": bson.M{"$sum": "$total_amount"}}}},
	}
	cur, err := s.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return model.Stats{}, fmt.Errorf("sum revenue: %w", err)
	}
	var sums []struct {
		Revenue float64 `bson:"revenue"`
	}
	if err := cur.All(ctx, &sums); err != nil {
		return model.Stats{}, fmt.Errorf("sum revenue: %w", err)
	}
	if len(sums) > 0 {
		st.TotalRevenue = sums[0].Revenue
	}
	return st, nil
}

func (s *MongoReservationStore) find(ctx context.Context, filter bson.M) ([]model.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}, {Key: "created_at", Value: 1}})
	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find reservations: %w", err)
	}
	var rows []model.ReservationRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode reservations: %w", err)
	}
	out := make([]model.Reservation, 0, len(rows))
	for _, row := range rows {
		r, err := row.Reservation()
		if err != nil {
			return nil, fmt.Errorf("reservation %s: %w", row.ID, err)
		}
		out = append(out, r)
	}
	return out, nil
}

// MongoBlocageStore keeps blocages as documents keyed by "id".
type MongoBlocageStore struct {
	coll *mongo.Collection
}

func NewMongoBlocageStore(db *mongo.Database) *MongoBlocageStore {
	return &MongoBlocageStore{coll: db.Collection(BlocagesCollection)}
}

func (s *MongoBlocageStore) Create(ctx context.Context, b model.Blocage) error {
	if _, err := s.coll.InsertOne(ctx, b.Row()); err != nil {
		return fmt.Errorf("insert blocage: %w", err)
	}
	return nil
}

func (s *MongoBlocageStore) List(ctx context.Context) ([]model.Blocage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}, {Key: "created_at", Value: 1}})
	cur, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find blocages: %w", err)
	}
	var rows []model.BlocageRow
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode blocages: %w", err)
	}
	out := make([]model.Blocage, 0, len(rows))
	for _, row := range rows {
		b, err := row.Blocage()
		if err != nil {
			return nil, fmt.Errorf("blocage %s: %w", row.ID, err)
		}
		out = append(out, b)
	}
	return out, nil
}

func (s *MongoBlocageStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("delete blocage: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// EnsureMongoIndexes makes "id" unique in both collections and indexes
// the fields the calendar filters on.
func EnsureMongoIndexes(ctx context.Context, db *mongo.Database) error {
	unique := mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
	if _, err := db.Collection(ReservationsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		unique,
		{Keys: bson.D{{Key: "payment_status", Value: 1}, {Key: "start_date", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("reservation indexes: %w", err)
	}
	if _, err := db.Collection(BlocagesCollection).Indexes().CreateOne(ctx, unique); err != nil {
		return fmt.Errorf("blocage indexes: %w", err)
	}
	return nil
}
