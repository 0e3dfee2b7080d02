package store

import (
	"context"
	"reflect"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-process Store used by unit tests. Collections are created
// lazily and documents kept in insertion order.
type Memory struct {
	mu   sync.Mutex
	cols map[string]*memoryCollection
}

func NewMemory() *Memory {
	return &Memory{cols: make(map[string]*memoryCollection)}
}

func (m *Memory) Collection(name string) Collection {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.cols[name]
	if !ok {
		c = &memoryCollection{}
		m.cols[name] = c
	}
	return c
}

type memoryCollection struct {
	mu   sync.RWMutex
	docs []bson.M
}

func (c *memoryCollection) Find(ctx context.Context, filter bson.M, opts ...FindOption) ([]bson.M, error) {
	o := applyOptions(opts)
	c.mu.RLock()
	out := []bson.M{}
	for _, d := range c.docs {
		if matches(d, filter) {
			out = append(out, clone(d))
		}
	}
	c.mu.RUnlock()

	for _, s := range o.Sort {
		field, desc := s.Key, s.Value == -1
		sort.SliceStable(out, func(i, j int) bool {
			if desc {
				return less(out[j][field], out[i][field])
			}
			return less(out[i][field], out[j][field])
		})
	}
	if o.Limit > 0 && int64(len(out)) > o.Limit {
		out = out[:o.Limit]
	}
	return out, nil
}

func (c *memoryCollection) FindOne(ctx context.Context, filter bson.M) (bson.M, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, d := range c.docs {
		if matches(d, filter) {
			return clone(d), nil
		}
	}
	return nil, nil
}

func (c *memoryCollection) InsertOne(ctx context.Context, doc bson.M) (*InsertResult, error) {
	d := clone(doc)
	if _, ok := d["_id"]; !ok {
		d["_id"] = primitive.NewObjectID()
	}
	c.mu.Lock()
	c.docs = append(c.docs, d)
	c.mu.Unlock()
	return &InsertResult{Acknowledged: true, InsertedID: d["_id"]}, nil
}

func (c *memoryCollection) UpdateOne(ctx context.Context, filter bson.M, update bson.M, upsert bool) (*UpdateResult, error) {
	set, _ := update["$set"].(bson.M)

	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range c.docs {
		if !matches(d, filter) {
			continue
		}
		for k, v := range set {
			d[k] = v
		}
		return &UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
	}
	if !upsert {
		return &UpdateResult{Acknowledged: true}, nil
	}

	// new document from the equality filter plus the $set fields
	d := bson.M{}
	for k, v := range filter {
		d[k] = v
	}
	for k, v := range set {
		d[k] = v
	}
	if _, ok := d["_id"]; !ok {
		d["_id"] = primitive.NewObjectID()
	}
	c.docs = append(c.docs, d)
	return &UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: d["_id"]}, nil
}

func (c *memoryCollection) DeleteOne(ctx context.Context, filter bson.M) (*DeleteResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, d := range c.docs {
		if matches(d, filter) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			return &DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
		}
	}
	return &DeleteResult{Acknowledged: true, DeletedCount: 0}, nil
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok || !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}

func less(a, b interface{}) bool {
	switch av := a.(type) {
	case primitive.ObjectID:
		if bv, ok := b.(primitive.ObjectID); ok {
			return av.Hex() < bv.Hex()
		}
	case string:
		if bv, ok := b.(string); ok {
			return av < bv
		}
	case int:
		if bv, ok := b.(int); ok {
			return av < bv
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv
		}
	}
	return false
}

func clone(doc bson.M) bson.M {
	out := bson.M{}
	for k, v := range doc {
		out[k] = v
	}
	return out
}
