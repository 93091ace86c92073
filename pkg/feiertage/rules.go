package feiertage

// MinYear is the first year covered by the library. All holidays in the rule
// table reoccur every year since 1995 (or since their activation year).
const MinYear = 1995

// nationwideHolidays are observed in all 16 federal states
var nationwideHolidays = []Holiday{
	Neujahr,
	Karfreitag,
	Ostermontag,
	ErsterMai,
	ChristiHimmelfahrt,
	Pfingstmontag,
	TagDerDeutschenEinheit,
	ErsterWeihnachtsfeiertag,
	ZweiterWeihnachtsfeiertag,
}

// stateRule is one state-specific holiday entry. A zero since means the
// holiday has been observed for the whole covered period; otherwise it is
// in force from that year onward.
type stateRule struct {
	holiday Holiday
	since   int
}

// stateHolidays lists the holidays each state observes on top of the
// nationwide set. Entries are kept in date order within a year.
//
// Augsburger Friedensfest is deliberately absent: it applies to the city of
// Augsburg only, not to all of Bayern. Mariä Himmelfahrt applies to Bavarian
// communities with a catholic majority, which is most of them, so it is
// included for Bayern as a whole.
var stateHolidays = map[State][]stateRule{
	BadenWuerttemberg: {
		{holiday: HeiligeDreiKoenige},
		{holiday: Fronleichnam},
		{holiday: Allerheiligen},
	},
	Bayern: {
		{holiday: HeiligeDreiKoenige},
		{holiday: Fronleichnam},
		{holiday: MariaeHimmelfahrt},
		{holiday: Allerheiligen},
	},
	Berlin: {
		{holiday: Frauentag, since: 2019},
	},
	Brandenburg: {
		{holiday: Reformationstag},
	},
	Bremen: {
		{holiday: Reformationstag, since: 2018},
	},
	Hamburg: {
		{holiday: Reformationstag, since: 2018},
	},
	Hessen: {
		{holiday: Fronleichnam},
	},
	MecklenburgVorpommern: {
		{holiday: Frauentag, since: 2023},
		{holiday: Reformationstag},
	},
	Niedersachsen: {
		{holiday: Reformationstag, since: 2018},
	},
	NordrheinWestfalen: {
		{holiday: Fronleichnam},
		{holiday: Allerheiligen},
	},
	RheinlandPfalz: {
		{holiday: Fronleichnam},
		{holiday: Allerheiligen},
	},
	Saarland: {
		{holiday: Fronleichnam},
		{holiday: MariaeHimmelfahrt},
		{holiday: Allerheiligen},
	},
	Sachsen: {
		{holiday: Reformationstag},
		{holiday: BussUndBettag},
	},
	SachsenAnhalt: {
		{holiday: HeiligeDreiKoenige},
		{holiday: Reformationstag},
	},
	SchleswigHolstein: {
		{holiday: Reformationstag, since: 2018},
	},
	Thueringen: {
		{holiday: Weltkindertag, since: 2019},
		{holiday: Reformationstag},
	},
}
