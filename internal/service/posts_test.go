package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"content_studio/internal/domain"
	"content_studio/internal/service/mocks"
	"content_studio/testdata/utils"
)

type PostServiceTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	posts     *mocks.MockScheduledPostStore
	publisher *mocks.MockPublisher

	service *PostService
	now     time.Time
}

func (s *PostServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.posts = mocks.NewMockScheduledPostStore(s.ctrl)
	s.publisher = mocks.NewMockPublisher(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.service = NewPostService(s.posts, s.publisher, logger)

	s.now = time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	s.service.now = func() time.Time { return s.now }
}

func (s *PostServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPostServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PostServiceTestSuite))
}

func (s *PostServiceTestSuite) TestSchedule_PublishesCreated() {
	ctx := context.Background()

	post := domain.ScheduledPost{Platform: "tiktok", ScheduledTime: s.now.Add(time.Hour)}
	created := post
	created.ID = 4
	created.Status = domain.PostScheduled

	s.posts.EXPECT().Create(ctx, post).Return(&created, nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Cond(func(e domain.Event) bool {
		return e.RoutingSuffix() == "scheduled_post.created" && e.RecordID == 4
	})).Return(nil)

	got, err := s.service.Schedule(ctx, post)
	s.Require().NoError(err)
	s.Equal(int64(4), got.ID)
}

func (s *PostServiceTestSuite) TestSchedule_StoreFailureSkipsPublish() {
	ctx := context.Background()

	s.posts.EXPECT().Create(ctx, gomock.Any()).Return(nil, errors.New("insert failed"))

	_, err := s.service.Schedule(ctx, domain.ScheduledPost{Platform: "tiktok"})
	s.ErrorContains(err, "create scheduled post")
}

func (s *PostServiceTestSuite) TestUpdate_PostedStampsPostedAt() {
	ctx := context.Background()

	s.posts.EXPECT().Update(ctx, int64(9), domain.ScheduledPostPatch{
		Status:   utils.Ptr(domain.PostPosted),
		PostedAt: utils.Ptr(s.now),
	}).Return(&domain.ScheduledPost{ID: 9, Status: domain.PostPosted, PostedAt: utils.Ptr(s.now)}, nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	got, err := s.service.Update(ctx, 9, domain.ScheduledPostPatch{Status: utils.Ptr(domain.PostPosted)})
	s.Require().NoError(err)
	s.Equal(s.now, *got.PostedAt)
}

func (s *PostServiceTestSuite) TestUpdate_ExplicitPostedAtKept() {
	ctx := context.Background()
	explicit := s.now.Add(-2 * time.Hour)

	s.posts.EXPECT().Update(ctx, int64(9), domain.ScheduledPostPatch{
		Status:   utils.Ptr(domain.PostPosted),
		PostedAt: &explicit,
	}).Return(&domain.ScheduledPost{ID: 9}, nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	_, err := s.service.Update(ctx, 9, domain.ScheduledPostPatch{
		Status:   utils.Ptr(domain.PostPosted),
		PostedAt: &explicit,
	})
	s.NoError(err)
}

func (s *PostServiceTestSuite) TestUpdate_OtherStatusLeavesPostedAt() {
	ctx := context.Background()

	s.posts.EXPECT().Update(ctx, int64(2), domain.ScheduledPostPatch{
		Status: utils.Ptr(domain.PostCancelled),
	}).Return(&domain.ScheduledPost{ID: 2, Status: domain.PostCancelled}, nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Cond(func(e domain.Event) bool {
		return e.Action == domain.ActionUpdated
	})).Return(nil)

	_, err := s.service.Update(ctx, 2, domain.ScheduledPostPatch{Status: utils.Ptr(domain.PostCancelled)})
	s.NoError(err)
}

func (s *PostServiceTestSuite) TestUpdate_NotFound() {
	ctx := context.Background()

	s.posts.EXPECT().Update(ctx, int64(77), gomock.Any()).
		Return(nil, fmt.Errorf("scheduled post 77: %w", domain.ErrNotFound))

	_, err := s.service.Update(ctx, 77, domain.ScheduledPostPatch{Caption: utils.Ptr("new")})
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *PostServiceTestSuite) TestSchedule_StoresUTC() {
	ctx := context.Background()
	local := time.Date(2026, 4, 2, 20, 0, 0, 0, time.FixedZone("UTC+3", 3*3600))

	s.posts.EXPECT().Create(ctx, gomock.Cond(func(p domain.ScheduledPost) bool {
		return p.ScheduledTime.Location() == time.UTC && p.ScheduledTime.Equal(local)
	})).Return(&domain.ScheduledPost{ID: 1}, nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	_, err := s.service.Schedule(ctx, domain.ScheduledPost{Platform: "tiktok", ScheduledTime: local})
	s.NoError(err)
}

func (s *PostServiceTestSuite) TestUpdate_StoresUTC() {
	ctx := context.Background()
	local := time.Date(2026, 4, 2, 20, 0, 0, 0, time.FixedZone("UTC-5", -5*3600))

	s.posts.EXPECT().Update(ctx, int64(3), gomock.Cond(func(p domain.ScheduledPostPatch) bool {
		return p.ScheduledTime.Location() == time.UTC && p.ScheduledTime.Equal(local) &&
			p.PostedAt.Location() == time.UTC
	})).Return(&domain.ScheduledPost{ID: 3}, nil)
	s.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil)

	_, err := s.service.Update(ctx, 3, domain.ScheduledPostPatch{ScheduledTime: &local, PostedAt: &local})
	s.NoError(err)
}
