// Package sample holds the demo dataset used to pre-populate the in-memory
// backing and to seed a fresh database.
package sample

import (
	"context"
	"fmt"

	"content_studio/internal/domain"
)

type ViralVideoCreator interface {
	Create(ctx context.Context, video domain.ViralVideo) (*domain.ViralVideo, error)
}

type AffiliateProductCreator interface {
	Create(ctx context.Context, product domain.AffiliateProduct) (*domain.AffiliateProduct, error)
}

type ScriptCreator interface {
	Create(ctx context.Context, script domain.Script) (*domain.Script, error)
}

type AnalyticsCreator interface {
	Create(ctx context.Context, analytics domain.Analytics) (*domain.Analytics, error)
}

// Target is where Load writes the sample rows.
type Target struct {
	ViralVideos       ViralVideoCreator
	AffiliateProducts AffiliateProductCreator
	Scripts           ScriptCreator
	Analytics         AnalyticsCreator
}

type Counts struct {
	ViralVideos       int
	AffiliateProducts int
	Scripts           int
	Analytics         int
}

func (c Counts) Total() int {
	return c.ViralVideos + c.AffiliateProducts + c.Scripts + c.Analytics
}

// Load inserts every sample row in declaration order and stops at the first
// failure. Counts reflects what was written before any error.
func Load(ctx context.Context, t Target) (Counts, error) {
	var counts Counts

	for _, v := range ViralVideos() {
		if _, err := t.ViralVideos.Create(ctx, v); err != nil {
			return counts, fmt.Errorf("create viral video %q: %w", v.Title, err)
		}
		counts.ViralVideos++
	}

	for _, p := range AffiliateProducts() {
		if _, err := t.AffiliateProducts.Create(ctx, p); err != nil {
			return counts, fmt.Errorf("create affiliate product %q: %w", p.Name, err)
		}
		counts.AffiliateProducts++
	}

	for _, s := range Scripts() {
		if _, err := t.Scripts.Create(ctx, s); err != nil {
			return counts, fmt.Errorf("create script %q: %w", s.Title, err)
		}
		counts.Scripts++
	}

	for _, a := range Analytics() {
		if _, err := t.Analytics.Create(ctx, a); err != nil {
			return counts, fmt.Errorf("create analytics for %s: %w", a.Platform, err)
		}
		counts.Analytics++
	}

	return counts, nil
}
