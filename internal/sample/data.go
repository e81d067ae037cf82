package sample

import (
	"strings"

	"content_studio/internal/domain"
)

func text(s string) *string { return &s }

func ViralVideos() []domain.ViralVideo {
	return []domain.ViralVideo{
		{
			Title:           "How I Make $8,600/Month in Passive Income (Work 2 Hours Daily)",
			Platform:        "TikTok",
			URL:             "https://tiktok.com/sample1",
			Views:           1_200_000,
			EngagementRate:  12.5,
			AIScore:         94,
			Captions:        text("Lost my waitressing job during pandemic. Now I make $8,600/month with affiliate marketing working just 2 hours a day. Here's exactly how I did it..."),
			Hashtags:        text("#passiveincome #affiliatemarketing #sidehustle #entrepreneurship #workfromhome"),
			AudioTranscript: text("Hey everyone, so I know this sounds crazy but I actually make over $8,600 a month now in passive income..."),
			Status:          domain.ViralVideoProcessed,
		},
		{
			Title:           "5 AI Tools That Actually Make Money (I Made $3,200 This Week)",
			Platform:        "Instagram",
			URL:             "https://instagram.com/sample2",
			Views:           890_000,
			EngagementRate:  9.8,
			AIScore:         87,
			Captions:        text("After testing 50+ AI tools, these 5 actually generate income. Tool #3 made me $1,200 in one day."),
			Hashtags:        text("#aitools #generativeai #makemoneywithai #aiautomation #artificialintelligence #chatgpt"),
			AudioTranscript: text("I've tested over 50 different AI tools and these 5 are the only ones that consistently generate income..."),
			Status:          domain.ViralVideoProcessed,
		},
		{
			Title:           "Wealth Building Secrets They Don't Want You to Know",
			Platform:        "YouTube",
			URL:             "https://youtube.com/sample3",
			Views:           650_000,
			EngagementRate:  11.2,
			AIScore:         89,
			Captions:        text("The wealth building strategies that made me $25K last month. Most people never learn these..."),
			Hashtags:        text("#wealthbuilding #passiveincome #investing #financialfreedom #makemoneyonline"),
			AudioTranscript: text("What I'm about to share with you are the exact wealth building strategies that took me from broke to making $25,000..."),
			Status:          domain.ViralVideoProcessed,
		},
		{
			Title:           "ChatGPT + This Tool = $500/Day (AI Money Method)",
			Platform:        "TikTok",
			URL:             "https://tiktok.com/sample4",
			Views:           750_000,
			EngagementRate:  10.3,
			AIScore:         91,
			Captions:        text("Everyone uses ChatGPT wrong. I combine it with this one tool and make $500+ daily. Here's the exact process..."),
			Hashtags:        text("#chatgpt #aitools #makemoneywithai #artificialintelligence #generativeai #aiautomation"),
			AudioTranscript: text("Most people are using ChatGPT completely wrong. Let me show you how I combine it with this tool to make $500 a day..."),
			Status:          domain.ViralVideoProcessed,
		},
		{
			Title:           "5 Side Hustles That Actually Pay $100+ Daily",
			Platform:        "Instagram",
			URL:             "https://instagram.com/sample5",
			Views:           950_000,
			EngagementRate:  13.1,
			AIScore:         96,
			Captions:        text("After testing 20+ side hustles, these 5 actually work. Number 3 changed my life completely."),
			Hashtags:        text("#sidehustle #makemoneyonline #passiveincome #entrepreneurship #workfromhome"),
			AudioTranscript: text("I've tried over 20 different side hustles and these 5 are the only ones that consistently pay..."),
			Status:          domain.ViralVideoProcessed,
		},
		{
			Title:           "How AI Automation Replaced My 9-5 Income",
			Platform:        "YouTube",
			URL:             "https://youtube.com/sample6",
			Views:           580_000,
			EngagementRate:  11.8,
			AIScore:         92,
			Captions:        text("AI didn't take my job - it gave me a better one. From $60K/year to $120K/year using AI automation. Here's how..."),
			Hashtags:        text("#aiautomation #artificialintelligence #makemoneywithai #generativeai #aitools #futureofwork"),
			AudioTranscript: text("A year ago I was making $60,000 at my corporate job. Today I make $120,000 a year using AI automation..."),
			Status:          domain.ViralVideoProcessed,
		},
	}
}

func product(name, category string, rate, amount float64, url string, gravity int, refund float64, upsells, recurring bool) domain.AffiliateProduct {
	return domain.AffiliateProduct{
		Name:             name,
		Category:         category,
		CommissionRate:   rate,
		CommissionAmount: &amount,
		URL:              url,
		Gravity:          &gravity,
		RefundRate:       &refund,
		HasUpsells:       upsells,
		IsRecurring:      recurring,
	}
}

// Commission amounts are the midpoint of each program's payout range.
func AffiliateProducts() []domain.AffiliateProduct {
	return []domain.AffiliateProduct{
		product("Systeme.io", "AI & Automation Tools", 60, 162, "https://systeme.io/affiliate", 95, 5.0, true, true),
		product("ClickFunnels 2.0", "AI & Automation Tools", 40, 78, "https://clickfunnels.com/affiliates", 88, 8.0, true, true),
		product("Jasper AI", "AI Content Creation", 30, 45, "https://jasper.ai/affiliate", 82, 7.0, false, true),
		product("GetResponse", "Email Marketing Automation", 33, 90, "https://getresponse.com/affiliate", 75, 6.0, true, true),
		product("ConvertKit", "Business & Marketing Tools", 30, 52, "https://convertkit.com/affiliate", 70, 5.0, false, true),
		product("Leadpages", "Business & Marketing Tools", 50, 111, "https://leadpages.com/affiliate", 65, 8.0, true, true),
		product("Legendary Marketer", "High-Ticket Courses", 60, 1550, "https://legendarymarketer.com/affiliate", 92, 12.0, true, false),
		product("ClickBank High-Ticket", "High-Ticket Courses", 62, 1350, "https://clickbank.com", 85, 15.0, true, false),
	}
}

// scriptBody lays out the five script sections the way the dashboard renders them.
func scriptBody(hook, problem, solution, proof, cta string) string {
	return strings.Join([]string{
		"🎯 Hook: '" + hook + "'",
		"❗ Problem: '" + problem + "'",
		"💡 Solution: '" + solution + "'",
		"📊 Proof: '" + proof + "'",
		"📞 Call to Action: '" + cta + "'",
	}, "\n\n")
}

func Scripts() []domain.Script {
	return []domain.Script{
		{
			Title: "Morning Motivation: Start Your Side Hustle Today",
			Content: scriptBody(
				"I used to hate Monday mornings. Now I wake up excited because my side hustle made me $500 while I slept.",
				"Most people are stuck in jobs they hate, living paycheck to paycheck, with no way out.",
				"I discovered affiliate marketing - promoting products I believe in and earning commissions.",
				"In 6 months, I went from $0 to $8,600/month working just 2 hours daily.",
				"Comment START if you want the exact blueprint I used. It's completely free.",
			),
			ContentType:    "Motivational",
			VideoLength:    "60 seconds",
			TargetAudience: "Aspiring Entrepreneurs",
			TemplateType:   "success-story",
			AIGenerated:    true,
			Status:         domain.ScriptApproved,
		},
		{
			Title: "5 AI Tools That Actually Make Money (Not ChatGPT)",
			Content: scriptBody(
				"Everyone talks about ChatGPT, but these 5 AI tools actually generate income.",
				"Most people use AI tools for fun, not profit. They're missing the real money-making opportunities.",
				"I use Jasper AI for content, Systeme.io for automation, and 3 other tools to create multiple income streams.",
				"Last month: $3,200 from AI-generated content, $2,100 from automation, $1,800 from AI affiliate commissions.",
				"Drop a 🤖 if you want my complete AI money-making toolkit.",
			),
			ContentType:    "AI Tools Review",
			VideoLength:    "45 seconds",
			TargetAudience: "Tech-Savvy Entrepreneurs",
			TemplateType:   "tips-tricks",
			AIGenerated:    true,
			Status:         domain.ScriptApproved,
		},
		{
			Title: "Wealth Building Secrets Rich People Don't Share",
			Content: scriptBody(
				"Rich people have 7 income streams. Poor people have 1. Here's how to build yours.",
				"You're trading time for money. Rich people make money work for them while they sleep.",
				"I built multiple passive income streams: affiliate marketing, course sales, and recurring commissions.",
				"Stream 1: $2,400/month. Stream 2: $1,800/month. Stream 3: $4,400/month. Total: $8,600/month.",
				"Comment WEALTH if you want my 7-stream income blueprint.",
			),
			ContentType:    "Wealth Building",
			VideoLength:    "75 seconds",
			TargetAudience: "Wealth Seekers",
			TemplateType:   "success-story",
			AIGenerated:    true,
			Status:         domain.ScriptApproved,
		},
		{
			Title: "Lunch Break Tip: Make Money While You Eat",
			Content: scriptBody(
				"This 15-minute lunch break routine made me $2,400 last month.",
				"You're already scrolling your phone during lunch - why not make money doing it?",
				"I promote business courses and tools that actually help people succeed.",
				"My best month was $8,600 in commissions from just posting helpful content.",
				"Drop a 💰 if you want to learn my exact method.",
			),
			ContentType:    "Tips & Tricks",
			VideoLength:    "30 seconds",
			TargetAudience: "Working Professionals",
			TemplateType:   "tips-tricks",
			AIGenerated:    true,
			Status:         domain.ScriptApproved,
		},
		{
			Title: "How AI Automation Replaced My 9-5 Income",
			Content: scriptBody(
				"AI didn't take my job - it gave me a better one. From $60K/year to $120K/year.",
				"Everyone fears AI will replace jobs, but nobody teaches you how to use AI to create better income.",
				"I built AI automation systems using ClickFunnels and GetResponse that work 24/7 without me.",
				"Month 1: $2,400. Month 6: $8,600. Month 12: $10,200. All from AI automation.",
				"Comment FREEDOM if you want to learn my AI automation blueprint.",
			),
			ContentType:    "AI Success Story",
			VideoLength:    "90 seconds",
			TargetAudience: "Corporate Employees",
			TemplateType:   "success-story",
			AIGenerated:    true,
			Status:         domain.ScriptApproved,
		},
	}
}

// Analytics rows are not linked to any video.
func Analytics() []domain.Analytics {
	return []domain.Analytics{
		{Platform: "TikTok", Views: 1_200_000, EngagementRate: 12.5, Revenue: 2400, ConversionRate: 4.2},
		{Platform: "Instagram", Views: 890_000, EngagementRate: 9.8, Revenue: 1800, ConversionRate: 3.8},
		{Platform: "YouTube", Views: 650_000, EngagementRate: 11.2, Revenue: 1400, ConversionRate: 5.1},
	}
}
