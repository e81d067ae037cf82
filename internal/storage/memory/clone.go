package memory

import "content_studio/internal/domain"

func dup[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneViralVideo(v domain.ViralVideo) domain.ViralVideo {
	v.Captions = dup(v.Captions)
	v.Hashtags = dup(v.Hashtags)
	v.AudioTranscript = dup(v.AudioTranscript)
	return v
}

func cloneAffiliateProduct(p domain.AffiliateProduct) domain.AffiliateProduct {
	p.CommissionAmount = dup(p.CommissionAmount)
	p.Gravity = dup(p.Gravity)
	p.RefundRate = dup(p.RefundRate)
	return p
}

// Script has no pointer fields.
func cloneScript(s domain.Script) domain.Script {
	return s
}

func cloneVideo(v domain.Video) domain.Video {
	v.ScriptID = dup(v.ScriptID)
	v.Filename = dup(v.Filename)
	v.Duration = dup(v.Duration)
	return v
}

func cloneScheduledPost(p domain.ScheduledPost) domain.ScheduledPost {
	p.VideoID = dup(p.VideoID)
	p.Caption = dup(p.Caption)
	p.Hashtags = dup(p.Hashtags)
	p.PostedAt = dup(p.PostedAt)
	return p
}

func cloneAnalytics(a domain.Analytics) domain.Analytics {
	a.VideoID = dup(a.VideoID)
	return a
}
