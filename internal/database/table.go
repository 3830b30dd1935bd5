package database

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/xyz-asif/dropwatch/internal/pkg/sheets"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const appendAttempts = 3

// rowDocument mirrors one spreadsheet row.
type rowDocument struct {
	Row       int       `bson:"row"`
	Cells     []string  `bson:"cells"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// MongoTable implements sheets.Table on a MongoDB collection, one document per row.
type MongoTable struct {
	collection *mongo.Collection
	width      int
}

var _ sheets.Table = (*MongoTable)(nil)

func NewMongoTable(ctx context.Context, db *mongo.Database, name string, width int) (*MongoTable, error) {
	collection := db.Collection(name)

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "row", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create row index: %w", err)
	}

	return &MongoTable{collection: collection, width: width}, nil
}

// AppendRow takes the next row number; concurrent appenders racing for the same
// number hit the unique index and retry.
func (t *MongoTable) AppendRow(ctx context.Context, row []string) error {
	cells := make([]string, t.width)
	copy(cells, row)

	for attempt := 0; attempt < appendAttempts; attempt++ {
		next, err := t.nextRow(ctx)
		if err != nil {
			return err
		}

		_, err = t.collection.InsertOne(ctx, rowDocument{Row: next, Cells: cells, UpdatedAt: time.Now()})
		if err == nil {
			return nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("failed to append row: %w", err)
		}
	}
	return errors.New("failed to append row: row number contention")
}

func (t *MongoTable) nextRow(ctx context.Context) (int, error) {
	var last rowDocument
	opts := options.FindOne().SetSort(bson.D{{Key: "row", Value: -1}})
	err := t.collection.FindOne(ctx, bson.M{}, opts).Decode(&last)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to find last row: %w", err)
	}
	return last.Row + 1, nil
}

func (t *MongoTable) ReadRows(ctx context.Context) ([][]string, error) {
	opts := options.Find().SetSort(bson.D{{Key: "row", Value: 1}})
	cursor, err := t.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []rowDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode rows: %w", err)
	}

	if len(docs) == 0 {
		return [][]string{}, nil
	}

	// Gaps keep their position as blank rows, like a sheet would.
	rows := make([][]string, docs[len(docs)-1].Row+1)
	for i := range rows {
		rows[i] = make([]string, t.width)
	}
	for _, doc := range docs {
		copy(rows[doc.Row], doc.Cells)
	}
	return rows, nil
}

func (t *MongoTable) ReadCell(ctx context.Context, row, col int) (string, error) {
	var doc rowDocument
	err := t.collection.FindOne(ctx, bson.M{"row": row}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return "", nil
		}
		return "", fmt.Errorf("failed to read cell: %w", err)
	}
	if col < 0 || col >= len(doc.Cells) {
		return "", nil
	}
	return doc.Cells[col], nil
}

// WriteCells is a single-document update, which MongoDB applies atomically.
func (t *MongoTable) WriteCells(ctx context.Context, row int, cells []sheets.Cell) error {
	set := bson.M{"updatedAt": time.Now()}
	for _, c := range cells {
		if c.Col < 0 || c.Col >= t.width {
			return fmt.Errorf("column %d out of range", c.Col)
		}
		set["cells."+strconv.Itoa(c.Col)] = c.Value
	}

	result, err := t.collection.UpdateOne(ctx, bson.M{"row": row}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to write cells: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("row %d not found", row)
	}
	return nil
}
