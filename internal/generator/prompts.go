package generator

const analysisSystemPrompt = "You are an expert affiliate marketing analyst specializing in viral content and wealth-building niches. Provide detailed, actionable insights."

const analysisPrompt = `
Analyze this viral video for affiliate marketing potential. Focus on wealth-building and side-hustle content quality.

Video Details:
- Title: %s
- Captions: %s
- Hashtags: %s
- Views: %d
- Engagement Rate: %v%%

Provide analysis in JSON format with:
- score: number (0-100) based on affiliate marketing potential
- engagement_quality: string (poor/good/excellent)
- content_themes: array of main themes
- success_factors: array of what makes it successful
- recommendations: array of how to adapt this for affiliate marketing

Focus on authenticity, trust-building, and wealth-building themes.
`

const scriptSystemPrompt = "You are an expert content creator specializing in authentic affiliate marketing scripts that build trust and drive engagement. Focus on sharing real income transformations and wealth-building."

const scriptPrompt = `
Generate a viral video script for affiliate marketing using an authentic, story-driven approach.

Requirements:
- Content Type: %s
- Video Length: %s
- Target Audience: %s
- Key Message: %s
- Template Type: %s

Follow this formula:
1. Hook: Start with income transformation or relatable struggle
2. Problem: Address common pain points (job loss, financial stress)
3. Solution: Introduce affiliate marketing as the answer
4. Proof: Share specific income numbers and lifestyle changes
5. CTA: Simple, direct call-to-action

Create authentic, trust-building content that focuses on:
- Real income transformations
- Overcoming adversity
- Building passive income
- Working fewer hours
- Freedom and lifestyle
- AI tools and automation
- Generative AI for income
- Wealth building strategies
- Multiple income streams

Provide response in JSON format with:
- title: compelling video title
- hook: opening line
- problem: problem statement
- solution: solution presentation
- proof: credibility/proof points
- cta: call to action
- full_script: complete script text
- hashtags: relevant hashtags array
- estimated_engagement: predicted engagement rate (0-100)

Make it conversational, authentic, and inspiring while maintaining credibility.
`

const authenticitySystemPrompt = "You are an expert at evaluating content authenticity for affiliate marketing. Score based on trustworthiness, relatability, and credibility."

const authenticityPrompt = `
Score this content for authenticity and trust-building potential in affiliate marketing (0-100).

Content: %s

Focus on:
- Personal story elements
- Specific numbers/results
- Relatable struggles
- Authentic tone
- Trust-building language
- Credibility indicators

Respond with just a number (0-100).
`
