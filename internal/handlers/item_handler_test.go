package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type itemResponse struct {
	Item struct {
		ID        int64  `json:"id"`
		Name      string `json:"name"`
		Done      bool   `json:"done"`
		CreatedAt string `json:"created_at"`
		UpdatedAt string `json:"updated_at"`
	} `json:"Item"`
}

func TestItem_Create(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "testjane", "test")
	bucketID := createBucketlist(t, router, token, "travel")
	path := fmt.Sprintf("/bucketlists/%d/items/", bucketID)

	t.Run("created with empty done string resolving to false", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, path, token, `{"name":"see rome","done":""}`)
		assert.Equal(t, http.StatusCreated, rr.Code)
		var body itemResponse
		decodeBody(t, rr, &body)
		assert.Equal(t, "see rome", body.Item.Name)
		assert.False(t, body.Item.Done)
	})

	t.Run("done accepts affirmative strings", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, path, token, `{"name":"see paris","done":"yes"}`)
		assert.Equal(t, http.StatusCreated, rr.Code)
		var body itemResponse
		decodeBody(t, rr, &body)
		assert.True(t, body.Item.Done)
	})

	t.Run("duplicate item name within the bucketlist", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, path, token, `{"name":"see rome"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "already exists")
	})

	t.Run("same item name in another bucketlist is fine", func(t *testing.T) {
		otherBucket := createBucketlist(t, router, token, "другое")
		rr := doJSON(t, router, http.MethodPost, fmt.Sprintf("/bucketlists/%d/items/", otherBucket), token, `{"name":"see rome"}`)
		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("empty name", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, path, token, `{"name":""}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "must have a name")
	})

	t.Run("foreign bucketlist is 404", func(t *testing.T) {
		other := registerAndLogin(t, router, "testjohn", "test")
		rr := doJSON(t, router, http.MethodPost, path, other, `{"name":"intruder"}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("missing bucketlist is 404", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/bucketlists/99999/items/", token, `{"name":"x"}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("no token", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, path, "", `{"name":"x"}`)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestItem_Update(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "testjane", "test")
	bucketID := createBucketlist(t, router, token, "travel")

	rr := doJSON(t, router, http.MethodPost, fmt.Sprintf("/bucketlists/%d/items/", bucketID), token, `{"name":"see rome","done":""}`)
	assert.Equal(t, http.StatusCreated, rr.Code)
	var created itemResponse
	decodeBody(t, rr, &created)
	path := fmt.Sprintf("/bucketlists/%d/items/%d", bucketID, created.Item.ID)

	t.Run("partial done only leaves name untouched", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPut, path, token, `{"done":"yes"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		var body itemResponse
		decodeBody(t, rr, &body)
		assert.Equal(t, "see rome", body.Item.Name)
		assert.True(t, body.Item.Done)
	})

	t.Run("partial name only leaves done untouched", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPut, path, token, `{"name":"see all of rome"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		var body itemResponse
		decodeBody(t, rr, &body)
		assert.Equal(t, "see all of rome", body.Item.Name)
		assert.True(t, body.Item.Done) // осталось от прошлого обновления
	})

	t.Run("done can be reset with bool false", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPut, path, token, `{"done":false}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		var body itemResponse
		decodeBody(t, rr, &body)
		assert.False(t, body.Item.Done)
	})

	t.Run("missing item is 404", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPut, fmt.Sprintf("/bucketlists/%d/items/99999", bucketID), token, `{"done":"yes"}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("item under another bucketlist is 404", func(t *testing.T) {
		otherBucket := createBucketlist(t, router, token, "books")
		rr := doJSON(t, router, http.MethodPut, fmt.Sprintf("/bucketlists/%d/items/%d", otherBucket, created.Item.ID), token, `{"done":"yes"}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("foreign caller is 404", func(t *testing.T) {
		other := registerAndLogin(t, router, "testjohn", "test")
		rr := doJSON(t, router, http.MethodPut, path, other, `{"done":"yes"}`)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestItem_Delete(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router, "testjane", "test")
	bucketID := createBucketlist(t, router, token, "travel")

	rr := doJSON(t, router, http.MethodPost, fmt.Sprintf("/bucketlists/%d/items/", bucketID), token, `{"name":"see rome"}`)
	assert.Equal(t, http.StatusCreated, rr.Code)
	var created itemResponse
	decodeBody(t, rr, &created)
	path := fmt.Sprintf("/bucketlists/%d/items/%d", bucketID, created.Item.ID)

	t.Run("foreign caller is 404", func(t *testing.T) {
		other := registerAndLogin(t, router, "testjohn", "test")
		rr := doJSON(t, router, http.MethodDelete, path, other, "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("deleted", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodDelete, path, token, "")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "has been deleted")
	})

	t.Run("delete twice is 404", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodDelete, path, token, "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
