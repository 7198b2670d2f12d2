package rules

// familyKind selects which required fields a category's templates consume.
type familyKind int

const (
	// familyDefault covers every category without an explicit family,
	// including "other". Interpolates the event name.
	familyDefault familyKind = iota
	// familyUnion covers couple ceremonies. Interpolates bride and groom.
	familyUnion
	// familyChild covers child ceremonies. Interpolates the child's name.
	familyChild
	// familyCommunity covers public events. Interpolates the event name
	// and the engine's year.
	familyCommunity
)

// families maps each known category to its template family. Categories not
// listed here fall back to familyDefault.
var families = map[string]familyKind{
	"wedding":    familyUnion,
	"reception":  familyUnion,
	"engagement": familyUnion,
	"haldi":      familyUnion,

	"mundan":  familyChild,
	"khatna":  familyChild,
	"baptism": familyChild,

	"hackathon":  familyCommunity,
	"convention": familyCommunity,
	"fest":       familyCommunity,
}

// familyOf returns the template family for a category.
func familyOf(category string) familyKind {
	return families[category]
}

// Template tables. Each entry is a fmt format string rendered in order with
// the family's positional arguments. Argument positions:
//
//	union:     1=category 2=bride 3=groom
//	child:     1=category 2=child
//	community: 1=category 2=event name 3=year
//	default:   1=category 2=event name
var (
	unionTemplates = []string{
		"#%[1]s%[2]s%[3]s",
		"#%[1]sOf%[2]sAnd%[3]s",
		"#%[2]s%[3]s%[1]s",
		"#%[1]sCelebration",
		"#%[1]sVibes",
		"#%[1]sDay",
		"#%[1]sMoments",
		"#%[1]sMemories",
	}

	childTemplates = []string{
		"#%[1]s%[2]s",
		"#%[2]s%[1]s",
		"#%[1]sCeremony",
		"#%[1]sCelebration",
		"#%[1]sDay",
		"#%[1]sMoments",
	}

	communityTemplates = []string{
		"#%[1]s%[2]s",
		"#%[2]s%[1]s",
		"#%[1]s%[3]s",
		"#%[1]sEvent",
		"#%[1]sVibes",
		"#%[1]sCommunity",
	}

	defaultTemplates = []string{
		"#%[1]s%[2]s",
		"#%[2]s%[1]s",
		"#%[1]sEvent",
		"#%[1]sCelebration",
		"#%[1]sVibes",
	}
)

// trending maps each known category to its fixed trending supplement.
// Appended after the family and date tags on every request.
var trending = map[string][]string{
	"wedding":    {"#WeddingDay", "#WeddingBells", "#WeddingCelebration", "#WeddingVibes", "#WeddingMoments"},
	"reception":  {"#ReceptionParty", "#ReceptionCelebration", "#ReceptionVibes", "#ReceptionMoments"},
	"engagement": {"#EngagementParty", "#EngagementCelebration", "#EngagementVibes", "#EngagementMoments"},
	"haldi":      {"#HaldiCeremony", "#HaldiCelebration", "#HaldiVibes", "#HaldiMoments"},
	"mundan":     {"#MundanCeremony", "#MundanCelebration", "#MundanVibes", "#MundanMoments"},
	"khatna":     {"#KhatnaCeremony", "#KhatnaCelebration", "#KhatnaVibes", "#KhatnaMoments"},
	"baptism":    {"#BaptismCeremony", "#BaptismCelebration", "#BaptismVibes", "#BaptismMoments"},
	"hackathon":  {"#Hackathon", "#CodingLife", "#TechEvent", "#Innovation", "#TechCommunity"},
	"convention": {"#Convention", "#Networking", "#BusinessEvent", "#ProfessionalDevelopment"},
	"fest":       {"#CollegeFest", "#CampusLife", "#CollegeVibes", "#StudentLife"},
	"other":      {"#Event", "#Celebration", "#PartyTime", "#Memories"},
}

// trendingFor returns the trending supplement for a category, falling back
// to the generic "other" set for categories without their own list.
func trendingFor(category string) []string {
	if tags, ok := trending[category]; ok {
		return tags
	}
	return trending["other"]
}
