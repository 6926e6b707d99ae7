package repo

import (
	"bucketlist/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// mkBucket — хелпер: пользователь + список для item-тестов
func mkBucket(t *testing.T, db *gorm.DB, username, name string) *model.Bucketlist {
	t.Helper()
	u := mkUser(t, db, username)
	b := &model.Bucketlist{Name: name, OwnerID: u.ID}
	assert.NoError(t, NewBucketlistRepository(db).Create(context.Background(), b))
	return b
}

func TestItemRepository_CreateAndDuplicates(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	b := mkBucket(t, db, "alice", "travel")
	other := &model.Bucketlist{Name: "books", OwnerID: b.OwnerID}
	assert.NoError(t, NewBucketlistRepository(db).Create(ctx, other))

	it := &model.Item{Name: "rome", BucketID: b.ID}
	assert.NoError(t, r.Create(ctx, it))
	assert.NotZero(t, it.ID)
	assert.False(t, it.Done) // default

	// повтор имени в том же списке — конфликт
	assert.ErrorIs(t, r.Create(ctx, &model.Item{Name: "rome", BucketID: b.ID}), ErrConflict)

	// то же имя в другом списке — допустимо
	assert.NoError(t, r.Create(ctx, &model.Item{Name: "rome", BucketID: other.ID}))
}

func TestItemRepository_GetByID_BucketScoped(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	b := mkBucket(t, db, "alice", "travel")
	it := &model.Item{Name: "rome", BucketID: b.ID}
	assert.NoError(t, r.Create(ctx, it))

	got, err := r.GetByID(ctx, b.ID, it.ID)
	assert.NoError(t, err)
	assert.Equal(t, "rome", got.Name)

	// элемент не принадлежит указанному списку — не найден
	_, err = r.GetByID(ctx, b.ID+1, it.ID)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
	_, err = r.GetByID(ctx, b.ID, 99999)
	assert.Equal(t, gorm.ErrRecordNotFound, err)
}

func TestItemRepository_Update(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	b := mkBucket(t, db, "alice", "travel")
	it := &model.Item{Name: "rome", BucketID: b.ID}
	assert.NoError(t, r.Create(ctx, it))
	created := it.UpdatedAt

	time.Sleep(10 * time.Millisecond)

	// частичное обновление: только done
	assert.NoError(t, r.Update(ctx, b.ID, it.ID, map[string]any{"done": true}))
	got, err := r.GetByID(ctx, b.ID, it.ID)
	assert.NoError(t, err)
	assert.True(t, got.Done)
	assert.Equal(t, "rome", got.Name) // имя не тронуто
	assert.True(t, got.UpdatedAt.After(created))

	// done можно вернуть обратно
	assert.NoError(t, r.Update(ctx, b.ID, it.ID, map[string]any{"done": false}))
	got, err = r.GetByID(ctx, b.ID, it.ID)
	assert.NoError(t, err)
	assert.False(t, got.Done)

	// не найдено
	assert.Equal(t, gorm.ErrRecordNotFound, r.Update(ctx, b.ID, 99999, map[string]any{"done": true}))

	// переименование в занятое имя — конфликт
	assert.NoError(t, r.Create(ctx, &model.Item{Name: "paris", BucketID: b.ID}))
	assert.ErrorIs(t, r.Update(ctx, b.ID, it.ID, map[string]any{"name": "paris"}), ErrConflict)
}

func TestItemRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	r := NewItemRepository(db)
	ctx := context.Background()

	b := mkBucket(t, db, "alice", "travel")
	it := &model.Item{Name: "rome", BucketID: b.ID}
	assert.NoError(t, r.Create(ctx, it))

	// чужой bucket_id — не найдено
	assert.Equal(t, gorm.ErrRecordNotFound, r.Delete(ctx, b.ID+1, it.ID))

	assert.NoError(t, r.Delete(ctx, b.ID, it.ID))
	_, err := r.GetByID(ctx, b.ID, it.ID)
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	assert.Equal(t, gorm.ErrRecordNotFound, r.Delete(ctx, b.ID, it.ID))
}
