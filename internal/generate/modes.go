package generate

import "github.com/bacdz/eduai/internal/llm"

// modeProfile is one row of the conversational mode table: the model tier,
// the grounding policy and the directive the mode adds to the prompt.
type modeProfile struct {
	profile   llm.Profile
	webSearch bool
	directive string
}

// modeProfiles keys conversational modes by name. Quiz, exercise and exam
// generation have fixed contracts and never consult the table.
var modeProfiles = map[string]modeProfile{
	"fast": {
		profile: llm.ProfileFast,
	},
	"think": {
		profile:   llm.ProfileThink,
		directive: "خذ وقتك في التفكير: علل كل خطوة بدقة، واعرض طريقة الوصول إلى النتيجة قبل الخلاصة.",
	},
	"search": {
		profile:   llm.ProfileFast,
		webSearch: true,
		directive: "ابحث عن أحدث المعلومات المتاحة حول الموضوع، واذكر مصادرك في نهاية الإجابة.",
	},
	"analyze": {
		profile:   llm.ProfileThink,
		directive: "قدم تحليلاً منهجياً معمقاً: فكك الموضوع إلى عناصره، وقارن بينها، وادعم التحليل بأمثلة.",
	},
	"lesson-plan": {
		profile: llm.ProfileThink,
	},
}

// profileFor returns the table row for a mode name. Unknown names get the
// fast defaults.
func profileFor(mode string) modeProfile {
	if mp, ok := modeProfiles[mode]; ok {
		return mp
	}
	return modeProfiles["fast"]
}
