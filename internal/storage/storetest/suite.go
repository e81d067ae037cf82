// Package storetest holds the behaviour every record store backing must
// share. Backings embed Suite and supply a fresh, empty Stores per test.
package storetest

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"content_studio/internal/domain"
	"content_studio/internal/storage"
	"content_studio/testdata/utils"
)

type Suite struct {
	suite.Suite

	// NewStores returns empty stores. It is called before every test.
	NewStores func() *storage.Stores

	ctx    context.Context
	stores *storage.Stores
}

func (s *Suite) SetupTest() {
	s.ctx = context.Background()
	s.Require().NotNil(s.NewStores, "NewStores must be set")
	s.stores = s.NewStores()
}

func (s *Suite) newViralVideo(title string) domain.ViralVideo {
	return domain.ViralVideo{
		Title:          title,
		Platform:       "tiktok",
		URL:            "https://tiktok.com/@creator/video/" + title,
		Views:          1_250_000,
		EngagementRate: 8.4,
		AIScore:        70,
		Captions:       utils.Ptr("Stop scrolling"),
		Hashtags:       utils.Ptr("#money #sidehustle"),
	}
}

func (s *Suite) TestViralVideo_CreateThenGet() {
	store := s.stores.ViralVideos

	created, err := store.Create(s.ctx, s.newViralVideo("first"))
	s.Require().NoError(err)
	s.Greater(created.ID, int64(0))
	s.Equal(domain.ViralVideoPending, created.Status)
	s.Nil(created.AudioTranscript)
	s.False(created.CreatedAt.IsZero())

	got, err := store.Get(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, got.ID)
	s.Equal("first", got.Title)
	s.Equal("tiktok", got.Platform)
	s.Equal(int64(1_250_000), got.Views)
	s.InDelta(8.4, got.EngagementRate, 0.0001)
	s.Equal(70, got.AIScore)
	s.Require().NotNil(got.Captions)
	s.Equal("Stop scrolling", *got.Captions)
	s.True(created.CreatedAt.Equal(got.CreatedAt))
}

func (s *Suite) TestViralVideo_BlankOptionalTextStoredAsNull() {
	video := s.newViralVideo("blank")
	video.Captions = utils.Ptr("")
	video.Hashtags = nil

	created, err := s.stores.ViralVideos.Create(s.ctx, video)
	s.Require().NoError(err)
	s.Nil(created.Captions)
	s.Nil(created.Hashtags)
}

func (s *Suite) TestViralVideo_ListNewestFirst() {
	store := s.stores.ViralVideos

	first, err := store.Create(s.ctx, s.newViralVideo("a"))
	s.Require().NoError(err)
	second, err := store.Create(s.ctx, s.newViralVideo("b"))
	s.Require().NoError(err)
	s.Greater(second.ID, first.ID)

	videos, err := store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(videos, 2)
	s.Equal(second.ID, videos[0].ID)
	s.Equal(first.ID, videos[1].ID)
}

func (s *Suite) TestViralVideo_UpdateAppliesOnlyPresentFields() {
	store := s.stores.ViralVideos

	created, err := store.Create(s.ctx, s.newViralVideo("patch"))
	s.Require().NoError(err)

	updated, err := store.Update(s.ctx, created.ID, domain.ViralVideoPatch{
		AIScore: utils.Ptr(91),
		Status:  utils.Ptr(domain.ViralVideoProcessed),
	})
	s.Require().NoError(err)
	s.Equal(91, updated.AIScore)
	s.Equal(domain.ViralVideoProcessed, updated.Status)
	s.Equal("patch", updated.Title)
	s.Equal(int64(1_250_000), updated.Views)
	s.Require().NotNil(updated.Captions)
	s.Equal("Stop scrolling", *updated.Captions)
	s.False(updated.UpdatedAt.Before(created.UpdatedAt))
}

func (s *Suite) TestViralVideo_MissingID() {
	store := s.stores.ViralVideos

	_, err := store.Get(s.ctx, 999_999)
	s.ErrorIs(err, domain.ErrNotFound)

	_, err = store.Update(s.ctx, 999_999, domain.ViralVideoPatch{Title: utils.Ptr("ghost")})
	s.ErrorIs(err, domain.ErrNotFound)

	videos, err := store.List(s.ctx)
	s.Require().NoError(err)
	s.Empty(videos)
}

func (s *Suite) TestAffiliateProduct_CreateListGet() {
	store := s.stores.AffiliateProducts

	first, err := store.Create(s.ctx, domain.AffiliateProduct{
		Name:           "Ikigai Weight Loss",
		Category:       "clickbank",
		CommissionRate: 75,
		URL:            "https://clickbank.com/ikigai",
		Gravity:        utils.Ptr(145),
		RefundRate:     utils.Ptr(3.2),
		HasUpsells:     true,
	})
	s.Require().NoError(err)
	second, err := store.Create(s.ctx, domain.AffiliateProduct{
		Name:             "ClickFunnels",
		Category:         "saas",
		CommissionRate:   40,
		CommissionAmount: utils.Ptr(38.8),
		URL:              "https://clickfunnels.com",
		IsRecurring:      true,
	})
	s.Require().NoError(err)

	products, err := store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(products, 2)
	s.Equal(second.ID, products[0].ID)

	got, err := store.Get(s.ctx, first.ID)
	s.Require().NoError(err)
	s.Require().NotNil(got.Gravity)
	s.Equal(145, *got.Gravity)
	s.Nil(got.CommissionAmount)
	s.True(got.HasUpsells)
	s.False(got.IsRecurring)

	_, err = store.Get(s.ctx, second.ID+1000)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *Suite) newScript(title, status string) domain.Script {
	return domain.Script{
		Title:          title,
		Content:        "Hook. Problem. Solution. Proof. CTA.",
		ContentType:    "comedy",
		VideoLength:    "30s",
		TargetAudience: "busy moms",
		TemplateType:   "hook-problem-solution",
		Status:         status,
	}
}

func (s *Suite) TestScript_Defaults() {
	created, err := s.stores.Scripts.Create(s.ctx, s.newScript("defaults", ""))
	s.Require().NoError(err)
	s.Equal(domain.ScriptDraft, created.Status)
	s.False(created.AIGenerated)
}

func (s *Suite) TestScript_ListByStatus() {
	store := s.stores.Scripts

	draft, err := store.Create(s.ctx, s.newScript("draft", domain.ScriptDraft))
	s.Require().NoError(err)
	approved, err := store.Create(s.ctx, s.newScript("approved", domain.ScriptApproved))
	s.Require().NoError(err)
	_, err = store.Create(s.ctx, s.newScript("used", domain.ScriptUsed))
	s.Require().NoError(err)

	all, err := store.ListByStatus(s.ctx)
	s.Require().NoError(err)
	s.Len(all, 3)

	filtered, err := store.ListByStatus(s.ctx, domain.ScriptDraft, domain.ScriptApproved)
	s.Require().NoError(err)
	s.Require().Len(filtered, 2)
	s.Equal(approved.ID, filtered[0].ID)
	s.Equal(draft.ID, filtered[1].ID)

	none, err := store.ListByStatus(s.ctx, "archived")
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *Suite) TestScript_UpdateStatusOnly() {
	store := s.stores.Scripts

	created, err := store.Create(s.ctx, s.newScript("approve me", ""))
	s.Require().NoError(err)

	updated, err := store.Update(s.ctx, created.ID, domain.ScriptPatch{Status: utils.Ptr(domain.ScriptApproved)})
	s.Require().NoError(err)
	s.Equal(domain.ScriptApproved, updated.Status)
	s.Equal(created.Content, updated.Content)
	s.Equal(created.Title, updated.Title)

	_, err = store.Update(s.ctx, created.ID+1000, domain.ScriptPatch{Status: utils.Ptr(domain.ScriptUsed)})
	s.ErrorIs(err, domain.ErrNotFound)

	scripts, err := store.List(s.ctx)
	s.Require().NoError(err)
	s.Len(scripts, 1)
}

func (s *Suite) TestVideo_DanglingScriptReference() {
	store := s.stores.Videos

	created, err := store.Create(s.ctx, domain.Video{
		ScriptID: utils.Ptr(int64(424242)),
		Title:    "orphan",
		Filename: utils.Ptr(""),
	})
	s.Require().NoError(err)
	s.Equal(domain.VideoGenerating, created.Status)
	s.Nil(created.Filename)
	s.Require().NotNil(created.ScriptID)
	s.Equal(int64(424242), *created.ScriptID)
	s.False(created.GeneratedAt.IsZero())

	updated, err := store.Update(s.ctx, created.ID, domain.VideoPatch{
		Filename: utils.Ptr("orphan.mp4"),
		Duration: utils.Ptr(32),
		Status:   utils.Ptr(domain.VideoReady),
	})
	s.Require().NoError(err)
	s.Equal(domain.VideoReady, updated.Status)
	s.Require().NotNil(updated.Filename)
	s.Equal("orphan.mp4", *updated.Filename)
	s.Require().NotNil(updated.Duration)
	s.Equal(32, *updated.Duration)
	s.Equal("orphan", updated.Title)

	_, err = store.Get(s.ctx, created.ID+1000)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *Suite) TestVideo_ListNewestFirst() {
	store := s.stores.Videos

	first, err := store.Create(s.ctx, domain.Video{Title: "one"})
	s.Require().NoError(err)
	second, err := store.Create(s.ctx, domain.Video{Title: "two"})
	s.Require().NoError(err)

	videos, err := store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(videos, 2)
	s.Equal(second.ID, videos[0].ID)
	s.Equal(first.ID, videos[1].ID)
}

func (s *Suite) TestScheduledPost_ListChronological() {
	store := s.stores.ScheduledPosts
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	late, err := store.Create(s.ctx, domain.ScheduledPost{
		Platform:      "youtube",
		ScheduledTime: base.Add(48 * time.Hour),
	})
	s.Require().NoError(err)
	middle, err := store.Create(s.ctx, domain.ScheduledPost{
		Platform:      "instagram",
		ScheduledTime: base.Add(24 * time.Hour),
	})
	s.Require().NoError(err)
	early, err := store.Create(s.ctx, domain.ScheduledPost{
		VideoID:       utils.Ptr(int64(7)),
		Platform:      "tiktok",
		ScheduledTime: base,
		Caption:       utils.Ptr("Day one"),
		Hashtags:      utils.Ptr(""),
	})
	s.Require().NoError(err)
	s.Equal(domain.PostScheduled, early.Status)
	s.Nil(early.Hashtags)
	s.Nil(early.PostedAt)

	posts, err := store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(posts, 3)
	s.Equal(early.ID, posts[0].ID)
	s.Equal(middle.ID, posts[1].ID)
	s.Equal(late.ID, posts[2].ID)
	s.True(base.Equal(posts[0].ScheduledTime))
}

func (s *Suite) TestScheduledPost_UpdateAndFilter() {
	store := s.stores.ScheduledPosts
	when := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

	created, err := store.Create(s.ctx, domain.ScheduledPost{Platform: "instagram", ScheduledTime: when})
	s.Require().NoError(err)

	postedAt := when.Add(time.Minute)
	updated, err := store.Update(s.ctx, created.ID, domain.ScheduledPostPatch{
		Status:   utils.Ptr(domain.PostPosted),
		PostedAt: &postedAt,
	})
	s.Require().NoError(err)
	s.Equal(domain.PostPosted, updated.Status)
	s.Require().NotNil(updated.PostedAt)
	s.True(postedAt.Equal(*updated.PostedAt))
	s.Equal("instagram", updated.Platform)

	posted, err := store.ListByStatus(s.ctx, domain.PostPosted)
	s.Require().NoError(err)
	s.Len(posted, 1)

	pending, err := store.ListByStatus(s.ctx, domain.PostScheduled)
	s.Require().NoError(err)
	s.Empty(pending)

	_, err = store.Update(s.ctx, created.ID+1000, domain.ScheduledPostPatch{Status: utils.Ptr(domain.PostFailed)})
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *Suite) TestAnalytics_ListAndByVideo() {
	store := s.stores.Analytics

	first, err := store.Create(s.ctx, domain.Analytics{
		VideoID:        utils.Ptr(int64(1)),
		Platform:       "tiktok",
		Views:          12_500,
		EngagementRate: 8.7,
		Revenue:        245.50,
		ConversionRate: 3.2,
	})
	s.Require().NoError(err)
	second, err := store.Create(s.ctx, domain.Analytics{
		VideoID:  utils.Ptr(int64(2)),
		Platform: "youtube",
	})
	s.Require().NoError(err)
	third, err := store.Create(s.ctx, domain.Analytics{
		VideoID:  utils.Ptr(int64(1)),
		Platform: "instagram",
		Views:    900,
	})
	s.Require().NoError(err)

	s.Equal(int64(0), second.Views)
	s.Zero(second.Revenue)
	s.False(second.Date.IsZero())

	all, err := store.List(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(all, 3)
	s.Equal(third.ID, all[0].ID)

	byVideo, err := store.ListByVideo(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(byVideo, 2)
	s.Equal(third.ID, byVideo[0].ID)
	s.Equal(first.ID, byVideo[1].ID)

	none, err := store.ListByVideo(s.ctx, 404)
	s.Require().NoError(err)
	s.Empty(none)

	got, err := store.Get(s.ctx, first.ID)
	s.Require().NoError(err)
	s.InDelta(245.50, got.Revenue, 0.0001)

	_, err = store.Get(s.ctx, third.ID+1000)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *Suite) TestIdentitiesAreNeverReused() {
	store := s.stores.Scripts

	ids := make(map[int64]bool)
	var last int64
	for i := 0; i < 5; i++ {
		created, err := store.Create(s.ctx, s.newScript("ids", ""))
		s.Require().NoError(err)
		s.False(ids[created.ID], "id %d reused", created.ID)
		s.Greater(created.ID, last)
		ids[created.ID] = true
		last = created.ID
	}
}
