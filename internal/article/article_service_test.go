package article

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"proapp/internal/category"
	"proapp/internal/common"
	"proapp/internal/dbmysql"
)

var editor = common.Actor{ID: 7, Username: "editor"}

func createArticle(t *testing.T, svc ArticleService, title string, in Input) *dbmysql.Article {
	t.Helper()
	in.Title = strPtr(title)
	a, err := svc.Create(context.Background(), editor, in)
	require.NoError(t, err)
	return a
}

func countArticles(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&dbmysql.Article{}).Count(&n).Error)
	return n
}

func TestArticleService_Create(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	news := createCategory(t, db, "News")

	tests := []struct {
		name     string
		in       Input
		wantErr  error
		wantSlug string
	}{
		{name: "slug from title", in: Input{Title: strPtr("  Hei Verden! "), CategoryID: idPtr(news.ID)}, wantSlug: "hei-verden"},
		{name: "title required", in: Input{Content: strPtr("body")}, wantErr: ErrTitleRequired},
		{name: "blank title", in: Input{Title: strPtr(" ")}, wantErr: ErrTitleRequired},
		{name: "unknown category", in: Input{Title: strPtr("Lost"), CategoryID: idPtr(99)}, wantErr: ErrInvalidCategory},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := svc.Create(ctx, editor, tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.ErrorIs(t, err, common.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantSlug, a.Slug)
			assert.Equal(t, "Hei Verden!", a.Title)
			require.NotNil(t, a.UserID)
			assert.Equal(t, editor.ID, *a.UserID)
			require.NotNil(t, a.Category)
			assert.Equal(t, "News", a.Category.Name)
			assert.False(t, a.IsPublished)
			assert.Equal(t, 1, a.Order)
		})
	}
	assert.Equal(t, int64(1), countArticles(t, db))
}

func TestArticleService_CreateOrderPerType(t *testing.T) {
	svc, _ := newTestService(t)

	first := createArticle(t, svc, "One", Input{Type: strPtr("blog")})
	second := createArticle(t, svc, "Two", Input{Type: strPtr("blog")})
	other := createArticle(t, svc, "Three", Input{Type: strPtr("faq")})
	pinned := createArticle(t, svc, "Four", Input{Type: strPtr("blog"), Order: intPtr(10)})

	assert.Equal(t, 1, first.Order)
	assert.Equal(t, 2, second.Order)
	assert.Equal(t, 1, other.Order)
	assert.Equal(t, 10, pinned.Order)
}

func TestArticleService_SlugCollision(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	a := createArticle(t, svc, "Release Notes", Input{})
	b := createArticle(t, svc, "Release notes", Input{})
	assert.Equal(t, "release-notes", a.Slug)
	assert.Equal(t, "release-notes-1", b.Slug)

	require.NoError(t, svc.Delete(ctx, a.ID))
	c := createArticle(t, svc, "Release Notes", Input{})
	assert.Equal(t, "release-notes-2", c.Slug, "trashed articles keep their slug")

	empty := createArticle(t, svc, "!!!", Input{})
	assert.Equal(t, "article", empty.Slug)
}

func TestArticleService_Update(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	news := createCategory(t, db, "News")
	a := createArticle(t, svc, "Draft", Input{CategoryID: idPtr(news.ID), Excerpt: strPtr("short")})
	createArticle(t, svc, "Final", Input{})

	t.Run("same title keeps slug", func(t *testing.T) {
		got, err := svc.Update(ctx, a.ID, Input{Title: strPtr("Draft"), IsPublished: boolPtr(true)})
		require.NoError(t, err)
		assert.Equal(t, "draft", got.Slug)
		assert.True(t, got.IsPublished)
		require.NotNil(t, got.Excerpt)
		assert.Equal(t, "short", *got.Excerpt)
	})

	t.Run("new title regenerates slug", func(t *testing.T) {
		got, err := svc.Update(ctx, a.ID, Input{Title: strPtr("Final")})
		require.NoError(t, err)
		assert.Equal(t, "Final", got.Title)
		assert.Equal(t, "final-1", got.Slug)
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := svc.Update(ctx, a.ID, Input{Title: strPtr("Other"), CategoryID: idPtr(99)})
		require.ErrorIs(t, err, ErrInvalidCategory)

		got, err := svc.Get(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "Final", got.Title)
		require.NotNil(t, got.CategoryID)
		assert.Equal(t, news.ID, *got.CategoryID)
	})

	t.Run("zero category detaches", func(t *testing.T) {
		got, err := svc.Update(ctx, a.ID, Input{CategoryID: idPtr(0), Excerpt: strPtr("")})
		require.NoError(t, err)
		assert.Nil(t, got.CategoryID)
		assert.Nil(t, got.Category)
		assert.Nil(t, got.Excerpt)
	})

	t.Run("missing article", func(t *testing.T) {
		_, err := svc.Update(ctx, 999, Input{Title: strPtr("x")})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestArticleService_GetBySlugCountsViews(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	a := createArticle(t, svc, "Popular", Input{})

	got, err := svc.GetBySlug(ctx, "popular")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.TotalSeen)

	got, err = svc.GetBySlug(ctx, "popular")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.TotalSeen)

	byID, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), byID.TotalSeen, "plain reads are not counted")

	_, err = svc.GetBySlug(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestArticleService_Delete(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	a := createArticle(t, svc, "A", Input{})
	b := createArticle(t, svc, "B", Input{})
	c := createArticle(t, svc, "C", Input{})

	require.NoError(t, svc.Delete(ctx, a.ID))
	assert.ErrorIs(t, svc.Delete(ctx, a.ID), ErrNotFound)
	_, err := svc.Get(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	n, err := svc.DeleteBulk(ctx, []uint64{a.ID, b.ID, c.ID, 99})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, int64(0), countArticles(t, db))

	var trashed int64
	require.NoError(t, db.Unscoped().Model(&dbmysql.Article{}).Count(&trashed).Error)
	assert.Equal(t, int64(3), trashed)
}

func TestArticleService_CreateBulk(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	news := createCategory(t, db, "News")

	t.Run("unknown category is dropped", func(t *testing.T) {
		got, err := svc.CreateBulk(ctx, editor, []Input{
			{Title: strPtr("Kept"), CategoryID: idPtr(news.ID)},
			{Title: strPtr("Orphan"), CategoryID: idPtr(99)},
		})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "kept", got[0].Slug)
		require.NotNil(t, got[0].Category)
		assert.Equal(t, news.ID, got[0].Category.ID)
		assert.Nil(t, got[1].CategoryID)
		assert.Equal(t, 2, got[1].Order)
	})

	t.Run("invalid item rolls back", func(t *testing.T) {
		_, err := svc.CreateBulk(ctx, editor, []Input{
			{Title: strPtr("Fine")},
			{Content: strPtr("no title")},
		})
		require.ErrorIs(t, err, ErrTitleRequired)
		assert.Equal(t, int64(2), countArticles(t, db))
	})
}

func TestArticleService_UpdateBulk(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	news := createCategory(t, db, "News")
	a := createArticle(t, svc, "A", Input{})
	b := createArticle(t, svc, "B", Input{})

	got, err := svc.UpdateBulk(ctx, []uint64{b.ID, 99, a.ID}, Input{IsPublished: boolPtr(true), CategoryID: idPtr(news.ID)})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, b.ID, got[0].ID)
	assert.Equal(t, a.ID, got[1].ID)
	for _, art := range got {
		assert.True(t, art.IsPublished)
		require.NotNil(t, art.Category)
		assert.Equal(t, "News", art.Category.Name)
	}

	_, err = svc.UpdateBulk(ctx, []uint64{a.ID, b.ID}, Input{IsPublished: boolPtr(false), CategoryID: idPtr(99)})
	require.ErrorIs(t, err, ErrInvalidCategory)
	again, err := svc.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, again.IsPublished)
}

func TestArticleService_Reorder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	a := createArticle(t, svc, "A", Input{})
	b := createArticle(t, svc, "B", Input{})
	c := createArticle(t, svc, "C", Input{})

	got, err := svc.Reorder(ctx, []uint64{c.ID, 99, a.ID, b.ID})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []uint64{c.ID, a.ID, b.ID}, []uint64{got[0].ID, got[1].ID, got[2].ID})
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].Order, got[1].Order, got[2].Order})

	page, err := svc.List(ctx, ListQuery{OrderBy: "order"})
	require.NoError(t, err)
	require.Len(t, page.Data, 3)
	assert.Equal(t, "c", page.Data[0].Slug)
}

func TestArticleService_List(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	jazz := createCategory(t, db, "Jazz")
	rock := createCategory(t, db, "Rock")

	createArticle(t, svc, "Miles", Input{Type: strPtr("blog"), CategoryID: idPtr(jazz.ID), IsPublished: boolPtr(true)})
	createArticle(t, svc, "Coltrane", Input{Type: strPtr("blog"), CategoryID: idPtr(jazz.ID)})
	createArticle(t, svc, "Stones", Input{Type: strPtr("blog"), CategoryID: idPtr(rock.ID), Excerpt: strPtr("Jazz-free zone")})
	createArticle(t, svc, "Help", Input{Type: strPtr("faq"), IsPublished: boolPtr(true)})

	slugs := func(p *common.Page[*dbmysql.Article]) []string {
		out := make([]string, 0, len(p.Data))
		for _, a := range p.Data {
			out = append(out, a.Slug)
		}
		return out
	}

	tests := []struct {
		name      string
		q         ListQuery
		want      []string
		wantTotal int64
	}{
		{name: "by type", q: ListQuery{Type: "blog", OrderBy: "title"}, want: []string{"coltrane", "miles", "stones"}, wantTotal: 3},
		{name: "by category", q: ListQuery{CategoryID: idPtr(jazz.ID), OrderBy: "id"}, want: []string{"miles", "coltrane"}, wantTotal: 2},
		{name: "published only", q: ListQuery{IsPublished: boolPtr(true), OrderBy: "id"}, want: []string{"miles", "help"}, wantTotal: 2},
		{name: "keyword matches category name and excerpt", q: ListQuery{Keyword: "jazz"}, want: []string{"coltrane", "miles", "stones"}, wantTotal: 3},
		{name: "keyword with wildcard", q: ListQuery{Keyword: "%"}, want: []string{}, wantTotal: 0},
		{name: "paging", q: ListQuery{OrderBy: "id", SortBy: "DESC", Page: 2, Limit: 3}, want: []string{"miles"}, wantTotal: 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, err := svc.List(ctx, tc.q)
			require.NoError(t, err)
			assert.Equal(t, tc.want, slugs(page))
			assert.Equal(t, tc.wantTotal, page.Total)
		})
	}

	t.Run("trashed category is not searched", func(t *testing.T) {
		require.NoError(t, category.NewCategoryService(category.NewCategoryRepository(db), nil).Delete(ctx, rock.ID))
		page, err := svc.List(ctx, ListQuery{Keyword: "rock"})
		require.NoError(t, err)
		assert.Empty(t, page.Data)
	})
}
