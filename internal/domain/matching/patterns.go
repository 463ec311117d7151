package matching

import "regexp"

// pattern pairs a case-insensitive layer-name regex with its base confidence.
type pattern struct {
	re         *regexp.Regexp
	source     string
	confidence float64
}

// patternTable is an ordered list of patterns for one label.
type patternTable struct {
	label    string
	patterns []pattern
}

const sep = `[ _-]?`

func pat(src string, confidence float64) pattern {
	return pattern{re: regexp.MustCompile(`(?i)` + src), source: src, confidence: confidence}
}

func table(label string, patterns ...pattern) patternTable {
	return patternTable{label: label, patterns: patterns}
}

var (
	teamPatterns = table("team",
		pat(`^(home|away)`+sep+`team`+sep+`(name|short`+sep+`name)$`, 0.9),
		pat(`^(home|away)`+sep+`team`+sep+`(abbr|abbreviation)$`, 0.9),
		pat(`^(home|away)`+sep+`team`+sep+`(city|mascot|record|rank|seed|conference)$`, 0.85),
		pat(`^(home|away)`+sep+`team`+sep+`(timeouts|fouls)$`, 0.85),
		pat(`^(home|away)`+sep+`team`+sep+`(primary|secondary|text)`+sep+`colou?r$`, 0.85),
		pat(`^(home|away)`+sep+`team`+sep+`logo(`+sep+`alt)?$`, 0.85),
	)

	scorePatterns = table("score",
		pat(`^(home|away)`+sep+`team`+sep+`score`+sep+`\d$`, 0.9),
		pat(`^(home|away)`+sep+`team`+sep+`score(`+sep+`ot)?$`, 0.9),
		pat(`^(home|away)`+sep+`team`+sep+`(hits|errors|shots)$`, 0.85),
	)

	eventPatterns = table("event",
		pat(`^event`+sep+`(title|name|subtitle|venue|city|state|date|time|season|week|round|league|sponsor|attendance|weather|temperature)$`, 0.85),
		pat(`^event`+sep+`(league|sponsor)`+sep+`logo$`, 0.85),
		pat(`^event`+sep+`broadcast`+sep+`network$`, 0.85),
		pat(`^game`+sep+`(clock|period|status)$`, 0.85),
		pat(`^game`+sep+`(period|final)`+sep+`label$`, 0.8),
		pat(`^shot`+sep+`clock$`, 0.8),
		pat(`^runner`+sep+`on`+sep+`(first|second|third)$`, 0.8),
		pat(`^(down|distance|yard`+sep+`line|inning|inning`+sep+`half|outs|balls|strikes|possession)$`, 0.75),
		pat(`^(power`+sep+`play|overtime`+sep+`flag)$`, 0.75),
	)

	playerPatterns = table("player",
		pat(`^player`+sep+`\d`+sep+`(name|first`+sep+`name|last`+sep+`name|number|position)$`, 0.85),
		pat(`^player`+sep+`\d`+sep+`stat`+sep+`\d`+sep+`(label|value)$`, 0.85),
		pat(`^player`+sep+`\d`+sep+`headshot$`, 0.85),
		pat(`^mvp`+sep+`(name|headshot|stat`+sep+`line)$`, 0.85),
	)

	statusPatterns = table("status",
		pat(`^show`+sep+`(scorebug|ticker|lower`+sep+`third|sponsor|headshots|period`+sep+`scores|records|rankings)$`, 0.8),
		pat(`^(template`+sep+`(theme|language|version)|layout`+sep+`variant|animation`+sep+`speed)$`, 0.75),
		pat(`^(accent|background|text|highlight)`+sep+`colou?r$`, 0.75),
		pat(`^(ticker`+sep+`text|lower`+sep+`third`+sep+`(title|subtitle))$`, 0.75),
	)

	logoPatterns = table("logo",
		pat(`^(broadcast`+sep+`logo|league`+sep+`watermark)$`, 0.8),
	)

	imagePatterns = table("image",
		pat(`^(background`+sep+`(image|video)|venue`+sep+`image|sponsor`+sep+`image|overlay`+sep+`image|qr`+sep+`code`+sep+`image)$`, 0.8),
		pat(`^(home|away)`+sep+`team`+sep+`photo$`, 0.8),
		pat(`^feature`+sep+`image(`+sep+`\d)?$`, 0.75),
	)
)

// legacyTables is the dispatch order used by the legacy pattern mode.
func legacyTables() []patternTable {
	return []patternTable{teamPatterns, scorePatterns, eventPatterns, playerPatterns}
}

// normalizedTables also consults the status, logo and image tables.
func normalizedTables() []patternTable {
	return append(legacyTables(), statusPatterns, logoPatterns, imagePatterns)
}
