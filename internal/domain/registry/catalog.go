package registry

import "github.com/okian/hardcard/internal/domain/types"

// catalog is the fixed variable table. It is built once and never mutated;
// every accessor hands out copies.
var catalog = []types.VariableDefinition{
	// team
	{Name: "homeTeamName", Category: types.CategoryTeam, DataType: types.DataText, Description: "Home team full name"},
	{Name: "homeTeamShortName", Category: types.CategoryTeam, DataType: types.DataText, Description: "Home team short display name"},
	{Name: "homeTeamAbbreviation", Category: types.CategoryTeam, DataType: types.DataText, Description: "Home team three-letter abbreviation"},
	{Name: "homeTeamCity", Category: types.CategoryTeam, DataType: types.DataText, Description: "Home team city or school"},
	{Name: "homeTeamMascot", Category: types.CategoryTeam, DataType: types.DataText, Description: "Home team mascot"},
	{Name: "homeTeamRecord", Category: types.CategoryTeam, DataType: types.DataText, Description: "Home team win-loss record", DefaultValue: "0-0"},
	{Name: "homeTeamRank", Category: types.CategoryTeam, DataType: types.DataNumber, Description: "Home team poll ranking"},
	{Name: "homeTeamSeed", Category: types.CategoryTeam, DataType: types.DataNumber, Description: "Home team tournament seed"},
	{Name: "homeTeamConference", Category: types.CategoryTeam, DataType: types.DataText, Description: "Home team conference"},
	{Name: "homeTeamTimeouts", Category: types.CategoryTeam, DataType: types.DataNumber, Description: "Home team timeouts remaining", DefaultValue: "3"},
	{Name: "homeTeamFouls", Category: types.CategoryTeam, DataType: types.DataNumber, Description: "Home team fouls this period", DefaultValue: "0"},
	{Name: "homeTeamPrimaryColor", Category: types.CategoryTeam, DataType: types.DataColor, Description: "Home team primary color (hex)", DefaultValue: "#000000"},
	{Name: "homeTeamSecondaryColor", Category: types.CategoryTeam, DataType: types.DataColor, Description: "Home team secondary color (hex)", DefaultValue: "#FFFFFF"},
	{Name: "homeTeamTextColor", Category: types.CategoryTeam, DataType: types.DataColor, Description: "Home team text color (hex)", DefaultValue: "#FFFFFF"},
	{Name: "homeTeamLogo", Category: types.CategoryTeam, DataType: types.DataLogo, Description: "Home team primary logo"},
	{Name: "homeTeamLogoAlt", Category: types.CategoryTeam, DataType: types.DataLogo, Description: "Home team alternate logo"},
	{Name: "awayTeamName", Category: types.CategoryTeam, DataType: types.DataText, Description: "Away team full name"},
	{Name: "awayTeamShortName", Category: types.CategoryTeam, DataType: types.DataText, Description: "Away team short display name"},
	{Name: "awayTeamAbbreviation", Category: types.CategoryTeam, DataType: types.DataText, Description: "Away team three-letter abbreviation"},
	{Name: "awayTeamCity", Category: types.CategoryTeam, DataType: types.DataText, Description: "Away team city or school"},
	{Name: "awayTeamMascot", Category: types.CategoryTeam, DataType: types.DataText, Description: "Away team mascot"},
	{Name: "awayTeamRecord", Category: types.CategoryTeam, DataType: types.DataText, Description: "Away team win-loss record", DefaultValue: "0-0"},
	{Name: "awayTeamRank", Category: types.CategoryTeam, DataType: types.DataNumber, Description: "Away team poll ranking"},
	{Name: "awayTeamSeed", Category: types.CategoryTeam, DataType: types.DataNumber, Description: "Away team tournament seed"},
	{Name: "awayTeamConference", Category: types.CategoryTeam, DataType: types.DataText, Description: "Away team conference"},
	{Name: "awayTeamTimeouts", Category: types.CategoryTeam, DataType: types.DataNumber, Description: "Away team timeouts remaining", DefaultValue: "3"},
	{Name: "awayTeamFouls", Category: types.CategoryTeam, DataType: types.DataNumber, Description: "Away team fouls this period", DefaultValue: "0"},
	{Name: "awayTeamPrimaryColor", Category: types.CategoryTeam, DataType: types.DataColor, Description: "Away team primary color (hex)", DefaultValue: "#000000"},
	{Name: "awayTeamSecondaryColor", Category: types.CategoryTeam, DataType: types.DataColor, Description: "Away team secondary color (hex)", DefaultValue: "#FFFFFF"},
	{Name: "awayTeamTextColor", Category: types.CategoryTeam, DataType: types.DataColor, Description: "Away team text color (hex)", DefaultValue: "#FFFFFF"},
	{Name: "awayTeamLogo", Category: types.CategoryTeam, DataType: types.DataLogo, Description: "Away team primary logo"},
	{Name: "awayTeamLogoAlt", Category: types.CategoryTeam, DataType: types.DataLogo, Description: "Away team alternate logo"},

	// score
	{Name: "homeTeamScore", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Home team total score", DefaultValue: "0"},
	{Name: "homeTeamScore1", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Home team score in period 1"},
	{Name: "homeTeamScore2", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Home team score in period 2"},
	{Name: "homeTeamScore3", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Home team score in period 3"},
	{Name: "homeTeamScore4", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Home team score in period 4"},
	{Name: "homeTeamScore5", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Home team score in period 5"},
	{Name: "homeTeamScore6", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Home team score in period 6"},
	{Name: "homeTeamScore7", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Home team score in period 7"},
	{Name: "homeTeamScore8", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Home team score in period 8"},
	{Name: "homeTeamScore9", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Home team score in period 9"},
	{Name: "homeTeamScoreOT", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Home team overtime score"},
	{Name: "homeTeamHits", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Home team hits"},
	{Name: "homeTeamErrors", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Home team errors"},
	{Name: "homeTeamShots", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Home team shots on goal"},
	{Name: "awayTeamScore", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Away team total score", DefaultValue: "0"},
	{Name: "awayTeamScore1", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Away team score in period 1"},
	{Name: "awayTeamScore2", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Away team score in period 2"},
	{Name: "awayTeamScore3", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Away team score in period 3"},
	{Name: "awayTeamScore4", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Away team score in period 4"},
	{Name: "awayTeamScore5", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Away team score in period 5"},
	{Name: "awayTeamScore6", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Away team score in period 6"},
	{Name: "awayTeamScore7", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Away team score in period 7"},
	{Name: "awayTeamScore8", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Away team score in period 8"},
	{Name: "awayTeamScore9", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Away team score in period 9"},
	{Name: "awayTeamScoreOT", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Away team overtime score"},
	{Name: "awayTeamHits", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Away team hits"},
	{Name: "awayTeamErrors", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Away team errors"},
	{Name: "awayTeamShots", Category: types.CategoryScore, DataType: types.DataNumber, Description: "Away team shots on goal"},

	// event
	{Name: "eventTitle", Category: types.CategoryEvent, DataType: types.DataText, Description: "Event headline title"},
	{Name: "eventName", Category: types.CategoryEvent, DataType: types.DataText, Description: "Event or game name"},
	{Name: "eventSubtitle", Category: types.CategoryEvent, DataType: types.DataText, Description: "Event subtitle line"},
	{Name: "eventVenue", Category: types.CategoryEvent, DataType: types.DataText, Description: "Venue name"},
	{Name: "eventCity", Category: types.CategoryEvent, DataType: types.DataText, Description: "Venue city"},
	{Name: "eventState", Category: types.CategoryEvent, DataType: types.DataText, Description: "Venue state or region"},
	{Name: "eventDate", Category: types.CategoryEvent, DataType: types.DataText, Description: "Event date"},
	{Name: "eventTime", Category: types.CategoryEvent, DataType: types.DataText, Description: "Event start time"},
	{Name: "eventSeason", Category: types.CategoryEvent, DataType: types.DataText, Description: "Season label"},
	{Name: "eventWeek", Category: types.CategoryEvent, DataType: types.DataText, Description: "Week label"},
	{Name: "eventRound", Category: types.CategoryEvent, DataType: types.DataText, Description: "Tournament round"},
	{Name: "eventLeague", Category: types.CategoryEvent, DataType: types.DataText, Description: "League name"},
	{Name: "eventLeagueLogo", Category: types.CategoryEvent, DataType: types.DataLogo, Description: "League logo"},
	{Name: "eventSponsor", Category: types.CategoryEvent, DataType: types.DataText, Description: "Presenting sponsor name"},
	{Name: "eventSponsorLogo", Category: types.CategoryEvent, DataType: types.DataLogo, Description: "Presenting sponsor logo"},
	{Name: "eventBroadcastNetwork", Category: types.CategoryEvent, DataType: types.DataText, Description: "Broadcast network"},
	{Name: "eventAttendance", Category: types.CategoryEvent, DataType: types.DataNumber, Description: "Attendance count"},
	{Name: "eventWeather", Category: types.CategoryEvent, DataType: types.DataText, Description: "Weather summary"},
	{Name: "eventTemperature", Category: types.CategoryEvent, DataType: types.DataNumber, Description: "Temperature in degrees"},
	{Name: "gameClock", Category: types.CategoryEvent, DataType: types.DataText, Description: "Game clock"},
	{Name: "gamePeriod", Category: types.CategoryEvent, DataType: types.DataNumber, Description: "Current period number"},
	{Name: "gamePeriodLabel", Category: types.CategoryEvent, DataType: types.DataText, Description: "Current period label"},
	{Name: "gameStatus", Category: types.CategoryEvent, DataType: types.DataText, Description: "Game status such as live or final"},
	{Name: "gameFinalLabel", Category: types.CategoryEvent, DataType: types.DataText, Description: "Label shown when the game is final"},
	{Name: "shotClock", Category: types.CategoryEvent, DataType: types.DataNumber, Description: "Shot clock seconds"},
	{Name: "possession", Category: types.CategoryEvent, DataType: types.DataText, Description: "Team in possession (home or away)"},
	{Name: "down", Category: types.CategoryEvent, DataType: types.DataNumber, Description: "Current down"},
	{Name: "distance", Category: types.CategoryEvent, DataType: types.DataNumber, Description: "Yards to go"},
	{Name: "yardLine", Category: types.CategoryEvent, DataType: types.DataText, Description: "Line of scrimmage"},
	{Name: "inning", Category: types.CategoryEvent, DataType: types.DataNumber, Description: "Current inning"},
	{Name: "inningHalf", Category: types.CategoryEvent, DataType: types.DataText, Description: "Top or bottom of the inning"},
	{Name: "outs", Category: types.CategoryEvent, DataType: types.DataNumber, Description: "Outs in the inning"},
	{Name: "balls", Category: types.CategoryEvent, DataType: types.DataNumber, Description: "Ball count"},
	{Name: "strikes", Category: types.CategoryEvent, DataType: types.DataNumber, Description: "Strike count"},
	{Name: "runnerOnFirst", Category: types.CategoryEvent, DataType: types.DataText, Description: "Runner on first base flag"},
	{Name: "runnerOnSecond", Category: types.CategoryEvent, DataType: types.DataText, Description: "Runner on second base flag"},
	{Name: "runnerOnThird", Category: types.CategoryEvent, DataType: types.DataText, Description: "Runner on third base flag"},
	{Name: "powerPlay", Category: types.CategoryEvent, DataType: types.DataText, Description: "Power play indicator"},
	{Name: "overtimeFlag", Category: types.CategoryEvent, DataType: types.DataText, Description: "Overtime indicator"},

	// player
	{Name: "player1Name", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 1 full name"},
	{Name: "player1FirstName", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 1 first name"},
	{Name: "player1LastName", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 1 last name"},
	{Name: "player1Number", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 1 jersey number"},
	{Name: "player1Position", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 1 position"},
	{Name: "player1Headshot", Category: types.CategoryPlayer, DataType: types.DataImage, Description: "Featured player 1 headshot"},
	{Name: "player1Stat1Label", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 1 first stat label"},
	{Name: "player1Stat1Value", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 1 first stat value"},
	{Name: "player1Stat2Label", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 1 second stat label"},
	{Name: "player1Stat2Value", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 1 second stat value"},
	{Name: "player2Name", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 2 full name"},
	{Name: "player2FirstName", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 2 first name"},
	{Name: "player2LastName", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 2 last name"},
	{Name: "player2Number", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 2 jersey number"},
	{Name: "player2Position", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 2 position"},
	{Name: "player2Headshot", Category: types.CategoryPlayer, DataType: types.DataImage, Description: "Featured player 2 headshot"},
	{Name: "player2Stat1Label", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 2 first stat label"},
	{Name: "player2Stat1Value", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 2 first stat value"},
	{Name: "player2Stat2Label", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 2 second stat label"},
	{Name: "player2Stat2Value", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 2 second stat value"},
	{Name: "player3Name", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 3 full name"},
	{Name: "player3FirstName", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 3 first name"},
	{Name: "player3LastName", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 3 last name"},
	{Name: "player3Number", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 3 jersey number"},
	{Name: "player3Position", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 3 position"},
	{Name: "player3Headshot", Category: types.CategoryPlayer, DataType: types.DataImage, Description: "Featured player 3 headshot"},
	{Name: "player3Stat1Label", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 3 first stat label"},
	{Name: "player3Stat1Value", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 3 first stat value"},
	{Name: "player3Stat2Label", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 3 second stat label"},
	{Name: "player3Stat2Value", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 3 second stat value"},
	{Name: "player4Name", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 4 full name"},
	{Name: "player4FirstName", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 4 first name"},
	{Name: "player4LastName", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 4 last name"},
	{Name: "player4Number", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 4 jersey number"},
	{Name: "player4Position", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 4 position"},
	{Name: "player4Headshot", Category: types.CategoryPlayer, DataType: types.DataImage, Description: "Featured player 4 headshot"},
	{Name: "player4Stat1Label", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 4 first stat label"},
	{Name: "player4Stat1Value", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 4 first stat value"},
	{Name: "player4Stat2Label", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 4 second stat label"},
	{Name: "player4Stat2Value", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 4 second stat value"},
	{Name: "player5Name", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 5 full name"},
	{Name: "player5FirstName", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 5 first name"},
	{Name: "player5LastName", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 5 last name"},
	{Name: "player5Number", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 5 jersey number"},
	{Name: "player5Position", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 5 position"},
	{Name: "player5Headshot", Category: types.CategoryPlayer, DataType: types.DataImage, Description: "Featured player 5 headshot"},
	{Name: "player5Stat1Label", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 5 first stat label"},
	{Name: "player5Stat1Value", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 5 first stat value"},
	{Name: "player5Stat2Label", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 5 second stat label"},
	{Name: "player5Stat2Value", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Featured player 5 second stat value"},
	{Name: "mvpName", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Most valuable player name"},
	{Name: "mvpHeadshot", Category: types.CategoryPlayer, DataType: types.DataImage, Description: "Most valuable player headshot"},
	{Name: "mvpStatLine", Category: types.CategoryPlayer, DataType: types.DataText, Description: "Most valuable player stat line"},

	// templateControl
	{Name: "showScorebug", Category: types.CategoryTemplateControl, DataType: types.DataText, Description: "Show the scorebug", DefaultValue: "true"},
	{Name: "showTicker", Category: types.CategoryTemplateControl, DataType: types.DataText, Description: "Show the ticker", DefaultValue: "true"},
	{Name: "showLowerThird", Category: types.CategoryTemplateControl, DataType: types.DataText, Description: "Show the lower third", DefaultValue: "false"},
	{Name: "showSponsor", Category: types.CategoryTemplateControl, DataType: types.DataText, Description: "Show sponsor elements", DefaultValue: "true"},
	{Name: "showHeadshots", Category: types.CategoryTemplateControl, DataType: types.DataText, Description: "Show player headshots", DefaultValue: "true"},
	{Name: "showPeriodScores", Category: types.CategoryTemplateControl, DataType: types.DataText, Description: "Show per-period scores", DefaultValue: "false"},
	{Name: "showRecords", Category: types.CategoryTemplateControl, DataType: types.DataText, Description: "Show team records", DefaultValue: "true"},
	{Name: "showRankings", Category: types.CategoryTemplateControl, DataType: types.DataText, Description: "Show team rankings", DefaultValue: "true"},
	{Name: "templateTheme", Category: types.CategoryTemplateControl, DataType: types.DataText, Description: "Theme name", DefaultValue: "default"},
	{Name: "templateLanguage", Category: types.CategoryTemplateControl, DataType: types.DataText, Description: "Template language code", DefaultValue: "en"},
	{Name: "templateVersion", Category: types.CategoryTemplateControl, DataType: types.DataText, Description: "Template version"},
	{Name: "layoutVariant", Category: types.CategoryTemplateControl, DataType: types.DataText, Description: "Layout variant name", DefaultValue: "standard"},
	{Name: "accentColor", Category: types.CategoryTemplateControl, DataType: types.DataColor, Description: "Accent color (hex)", DefaultValue: "#FFCC00"},
	{Name: "backgroundColor", Category: types.CategoryTemplateControl, DataType: types.DataColor, Description: "Background color (hex)", DefaultValue: "#000000"},
	{Name: "textColor", Category: types.CategoryTemplateControl, DataType: types.DataColor, Description: "Default text color (hex)", DefaultValue: "#FFFFFF"},
	{Name: "highlightColor", Category: types.CategoryTemplateControl, DataType: types.DataColor, Description: "Highlight color (hex)", DefaultValue: "#FF0000"},
	{Name: "animationSpeed", Category: types.CategoryTemplateControl, DataType: types.DataNumber, Description: "Animation speed multiplier", DefaultValue: "1"},
	{Name: "tickerText", Category: types.CategoryTemplateControl, DataType: types.DataText, Description: "Ticker crawl text"},
	{Name: "lowerThirdTitle", Category: types.CategoryTemplateControl, DataType: types.DataText, Description: "Lower third title"},
	{Name: "lowerThirdSubtitle", Category: types.CategoryTemplateControl, DataType: types.DataText, Description: "Lower third subtitle"},

	// media
	{Name: "backgroundImage", Category: types.CategoryMedia, DataType: types.DataImage, Description: "Full-frame background image"},
	{Name: "backgroundVideo", Category: types.CategoryMedia, DataType: types.DataImage, Description: "Full-frame background video"},
	{Name: "venueImage", Category: types.CategoryMedia, DataType: types.DataImage, Description: "Venue photo"},
	{Name: "sponsorImage", Category: types.CategoryMedia, DataType: types.DataImage, Description: "Sponsor artwork"},
	{Name: "broadcastLogo", Category: types.CategoryMedia, DataType: types.DataLogo, Description: "Broadcaster bug logo"},
	{Name: "leagueWatermark", Category: types.CategoryMedia, DataType: types.DataLogo, Description: "League watermark"},
	{Name: "homeTeamPhoto", Category: types.CategoryMedia, DataType: types.DataImage, Description: "Home team photo"},
	{Name: "awayTeamPhoto", Category: types.CategoryMedia, DataType: types.DataImage, Description: "Away team photo"},
	{Name: "featureImage", Category: types.CategoryMedia, DataType: types.DataImage, Description: "Feature image"},
	{Name: "featureImage2", Category: types.CategoryMedia, DataType: types.DataImage, Description: "Second feature image"},
	{Name: "featureImage3", Category: types.CategoryMedia, DataType: types.DataImage, Description: "Third feature image"},
	{Name: "overlayImage", Category: types.CategoryMedia, DataType: types.DataImage, Description: "Overlay texture"},
	{Name: "qrCodeImage", Category: types.CategoryMedia, DataType: types.DataImage, Description: "QR code image"},
}
