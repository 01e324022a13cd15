package seo

// Shared threshold table. Both the scoring and recommendation paths read
// these constants so the two can never drift apart.
const (
	titleIdealMin = 50
	titleIdealMax = 60
	titleOkMin    = 30
	titleOkMax    = 70

	metaIdealMin = 150
	metaIdealMax = 160
	metaOkMin    = 120
	metaOkMax    = 170

	densityIdealMin = 1.0
	densityIdealMax = 2.5
	densityOkMin    = 0.5
	densityOkMax    = 3.5
	densityRecLow   = 0.5
	densityRecHigh  = 3.0

	// A paragraph above paragraphLongLen counts toward the aggregate long
	// ratio; above paragraphVeryLongLen it gets its own recommendation.
	paragraphLongLen      = 200
	paragraphVeryLongLen  = 300
	longParagraphMaxShare = 0.5

	coverageMin = 0.2
	coverageMax = 0.7

	minimalWords       = 150
	thinContentWords   = 300
	comprehensiveWords = 500
	longFormWords      = 500

	lcpGoodMs = 2500
	lcpOkMs   = 4000
	fidGoodMs = 100
	fidOkMs   = 300
	clsGood   = 0.1
	clsOk     = 0.25

	maxLoadTimeSeconds = 3.0

	readabilityVeryHard = 30
	readabilityHard     = 50

	freshDays         = 30
	recentDays        = 180
	agingDays         = 365
	updatedFreshDays  = 90
	updatedRecentDays = 365
	updatedAgingDays  = 730
)
