package landing_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fproduction/studio-backend/internal/catalog"
	"github.com/fproduction/studio-backend/internal/image"
	"github.com/fproduction/studio-backend/internal/landing"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	// migrating Image also creates the events and event_images tables
	// through its association metadata
	require.NoError(t, db.AutoMigrate(&catalog.Service{}, &image.Image{}))
	return db
}

func seedLandingFixture(t *testing.T, db *gorm.DB) {
	t.Helper()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, db.Exec(`INSERT INTO events (id, title) VALUES ('E1', 'Lễ cưới Minh & Lan')`).Error)
	imgs := []image.Image{
		{ID: "A", S3Key: "images/2025/06/a.jpg", ShowOnLanding: true, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "B", S3Key: "images/2025/06/b.jpg", ShowOnLanding: true, CreatedAt: base.Add(1 * time.Hour)},
	}
	require.NoError(t, db.Create(&imgs).Error)
	for _, id := range []string{"A", "B"} {
		require.NoError(t, db.Exec(`INSERT INTO event_images (event_id, image_id) VALUES ('E1', ?)`, id).Error)
	}
}

func TestFindEventsWithLandingImagesFiltersHiddenImages(t *testing.T) {
	db := openTestDB(t)
	seedLandingFixture(t, db)
	repo := landing.NewRepository(db, catalog.NewRepository(db))
	ctx := context.Background()

	events, err := repo.FindEventsWithLandingImages(ctx, []string{"E1"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, []string{"A", "B"}, imageIDs(events[0].Images))

	// hiding an image removes it from the next call
	require.NoError(t, db.Model(&image.Image{}).Where("id = ?", "B").
		Update("show_on_landing", false).Error)

	events, err = repo.FindEventsWithLandingImages(ctx, []string{"E1"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, []string{"A"}, imageIDs(events[0].Images))
}

func TestFindEventsWithLandingImagesSkipsUnknownIDs(t *testing.T) {
	db := openTestDB(t)
	seedLandingFixture(t, db)
	repo := landing.NewRepository(db, catalog.NewRepository(db))

	events, err := repo.FindEventsWithLandingImages(context.Background(), []string{"E1", "GONE"})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "E1", events[0].ID)
}

func TestFindServiceByNameIsCaseInsensitive(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Exec(
		`INSERT INTO services (id, name, created_at, updated_at) VALUES ('S1', 'Chụp Ảnh Sự Kiện', ?, ?)`,
		time.Now(), time.Now()).Error)
	repo := landing.NewRepository(db, catalog.NewRepository(db))

	svc, err := repo.FindServiceByName(context.Background(), "chụp ảnh sự kiện")
	require.NoError(t, err)
	assert.Equal(t, "S1", svc.ID)
}

func imageIDs(imgs []image.Image) []string {
	out := make([]string, 0, len(imgs))
	for _, i := range imgs {
		out = append(out, i.ID)
	}
	return out
}
