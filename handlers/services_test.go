package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/nu-immigration/server/internal/store"
	"github.com/stretchr/testify/require"
)

func TestServices_CreateThenGetRoundTrip(t *testing.T) {
	g, _ := newTestAPI(t, store.NewMemory())

	w := do(g, http.MethodPost, "/services", `{"title":"Student Visa","price":"200"}`, "")
	require.Equal(t, http.StatusOK, w.Code)

	var ins struct {
		Acknowledged bool   `json:"acknowledged"`
		InsertedID   string `json:"insertedId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ins))
	require.True(t, ins.Acknowledged)
	require.NotEmpty(t, ins.InsertedID)

	w = do(g, http.MethodGet, "/services/"+ins.InsertedID, "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	require.Equal(t, "Student Visa", doc["title"])
	require.Equal(t, "200", doc["price"])
	require.Equal(t, ins.InsertedID, doc["_id"])
}

func TestServices_GetAbsentReturnsNull(t *testing.T) {
	g, _ := newTestAPI(t, store.NewMemory())
	w := do(g, http.MethodGet, "/services/64f000000000000000000000", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "null", w.Body.String())
}

func TestServices_InvalidID(t *testing.T) {
	g, ts := newTestAPI(t, store.NewMemory())

	w := do(g, http.MethodGet, "/services/not-a-hex-id", "", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"message":"Invalid id"}`, w.Body.String())

	w = do(g, http.MethodDelete, "/services/not-a-hex-id", "", bearer(t, ts, "a@x.com"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"message":"Invalid id"}`, w.Body.String())
}

func TestServices_ListNewestFirst(t *testing.T) {
	g, _ := newTestAPI(t, store.NewMemory())

	var ids []string
	for i := 0; i < 4; i++ {
		w := do(g, http.MethodPost, "/services", fmt.Sprintf(`{"n":%d}`, i), "")
		require.Equal(t, http.StatusOK, w.Code)
		var ins struct {
			InsertedID string `json:"insertedId"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ins))
		ids = append(ids, ins.InsertedID)
	}

	w := do(g, http.MethodGet, "/services", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var docs []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
	require.Len(t, docs, 4)
	for i := 0; i < 4; i++ {
		require.Equal(t, ids[len(ids)-1-i], docs[i]["_id"])
	}
}

func TestThreeServices_CapsAtThreeNewest(t *testing.T) {
	g, _ := newTestAPI(t, store.NewMemory())

	var ids []string
	for i := 0; i < 5; i++ {
		w := do(g, http.MethodPost, "/services", fmt.Sprintf(`{"n":%d}`, i), "")
		var ins struct {
			InsertedID string `json:"insertedId"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ins))
		ids = append(ids, ins.InsertedID)
	}

	w := do(g, http.MethodGet, "/threeservices", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var docs []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
	require.Len(t, docs, 3)
	for i := 0; i < 3; i++ {
		require.Equal(t, ids[len(ids)-1-i], docs[i]["_id"])
	}
}

func TestThreeServices_FewerThanThree(t *testing.T) {
	g, _ := newTestAPI(t, store.NewMemory())
	_ = do(g, http.MethodPost, "/services", `{"n":1}`, "")

	w := do(g, http.MethodGet, "/threeservices", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	var docs []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
	require.Len(t, docs, 1)
}

func TestServices_DeleteAbsentCountsZero(t *testing.T) {
	g, ts := newTestAPI(t, store.NewMemory())

	w := do(g, http.MethodDelete, "/services/64f000000000000000000000", "", bearer(t, ts, "a@x.com"))
	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Equal(t, int64(0), res.DeletedCount)
}

func TestServices_Delete(t *testing.T) {
	g, ts := newTestAPI(t, store.NewMemory())

	w := do(g, http.MethodPost, "/services", `{"title":"x"}`, "")
	var ins struct {
		InsertedID string `json:"insertedId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ins))

	w = do(g, http.MethodDelete, "/services/"+ins.InsertedID, "", bearer(t, ts, "a@x.com"))
	require.Equal(t, http.StatusOK, w.Code)
	var res struct {
		DeletedCount int64 `json:"deletedCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Equal(t, int64(1), res.DeletedCount)

	w = do(g, http.MethodGet, "/services/"+ins.InsertedID, "", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "null", w.Body.String())
}
