package script

// Choice set names referenced by seeded replies.
const (
	SetFeelings     = "feelings"
	SetReflection   = "reflection"
	SetVentingInfo  = "venting_info"
	SetCoachingInfo = "coaching_info"
	SetTherapyInfo  = "therapy_info"
	SetCrisis       = "crisis"
)

// In-site destinations for the three offerings.
const (
	PathVenting  = "/venting"
	PathCoaching = "/coaching"
	PathTherapy  = "/therapy"
)

// DefaultHelplineURL points at an international crisis-helpline directory.
const DefaultHelplineURL = "https://findahelpline.com"

// Seed returns the production conversation script.
func Seed() Script {
	return Script{
		Disclaimer: "MindHaven offers peer support and life coaching, not medical or mental-health treatment. " +
			"Our listeners and coaches are not licensed clinicians, and this chat cannot diagnose, treat, or advise on any condition.\n" +
			"If you are in immediate danger or thinking about harming yourself, please contact your local emergency services right away.",
		Replies: map[Stage]Reply{
			StageOpening: {
				Body:      "Hi, I'm the MindHaven guide. I can help you figure out which kind of support fits where you are right now.\nHow are you feeling today?",
				ChoiceSet: SetFeelings,
			},
			StageReflection: {
				Body: "Thank you for sharing that — putting a feeling into words is already a step. " +
					"MindHaven has three ways to support you, and I can tell you how each one works. What would you like to know?",
				ChoiceSet: SetReflection,
			},
			StageVenting: {
				Body: "Venting is our free, instant option. You're matched with a trained peer listener within minutes — no appointment, no account, no judgement. " +
					"It's a space to say what's on your mind out loud to someone who simply listens.\n" +
					"Listeners are peers, not professionals, so venting is for getting things off your chest rather than working through a diagnosis.",
				ChoiceSet: SetVentingInfo,
			},
			StageCoaching: {
				Body: "Coaching is a paid, scheduled option. You work one-on-one with a certified life coach on concrete goals — stress habits, relationships, feeling stuck — across recurring sessions.\n" +
					"To be clear: coaching is forward-looking guidance, not therapy, and our coaches don't treat mental-health conditions.",
				ChoiceSet: SetCoachingInfo,
			},
			StageTherapy: {
				Body: "Therapy is care from a licensed professional. We don't provide it ourselves — instead we keep a vetted directory of licensed therapists and explain how to pick one, what sessions cost, and what to expect.\n" +
					"If what you're carrying feels clinical — persistent low mood, anxiety that won't lift, past trauma — therapy is the right door.",
				ChoiceSet: SetTherapyInfo,
			},
			StageCrisis: {
				Body: "I'm glad you told me. This chat can't provide crisis support, and I won't pretend it can.\n" +
					"If you feel unsafe right now, please contact your local emergency services, or reach a crisis helpline — trained counsellors are available around the clock, for free.",
				ChoiceSet: SetCrisis,
			},
			StageCrisisKeyword: {
				Body: "It sounds like you might be going through something serious. I'm not able to help with a crisis, but real people can, right now.\n" +
					"Please contact your local emergency services, or open the helpline directory below. If the button doesn't work, the directory is at " + DefaultHelplineURL + ".",
				ChoiceSet: SetCrisis,
			},
			StageFallback: {
				Body: "I can help you explore Venting, Coaching, or Therapy — they're the three kinds of support MindHaven offers. " +
					"Pick one below and I'll explain how it works.",
				ChoiceSet: SetReflection,
			},
		},
		ChoiceSets: map[string][]Choice{
			SetFeelings: {
				{Label: "Overwhelmed / stressed", Action: ActionFeelingPicked},
				{Label: "Sad / low", Action: ActionFeelingPicked},
				{Label: "Confused / stuck", Action: ActionFeelingPicked},
				{Label: "Numb / disconnected", Action: ActionFeelingPicked},
				{Label: "Not sure", Action: ActionFeelingPicked},
				{Label: "Prefer not to say", Action: ActionFeelingPicked},
			},
			SetReflection: {
				{Label: "What is Venting?", Action: ActionExplainVenting},
				{Label: "What is Coaching?", Action: ActionExplainCoaching},
				{Label: "What is Therapy?", Action: ActionExplainTherapy},
				{Label: "What if I feel unsafe?", Action: ActionCrisisMode},
			},
			SetVentingInfo: {
				{Label: "Start Venting", Action: ActionGotoVenting},
				{Label: "Learn about Coaching", Action: ActionExplainCoaching},
			},
			SetCoachingInfo: {
				{Label: "Explore Coaching", Action: ActionGotoCoaching},
				{Label: "Learn about Therapy", Action: ActionExplainTherapy},
			},
			SetTherapyInfo: {
				{Label: "View Therapy Resources", Action: ActionGotoTherapy},
				{Label: "Learn about Coaching", Action: ActionExplainCoaching},
			},
			SetCrisis: {
				{Label: "Open Crisis Helplines", Action: ActionGotoHelpline},
			},
		},
		CrisisKeywords: []string{
			"suicide",
			"kill myself",
			"end my life",
			"want to die",
			"self-harm",
			"self harm",
			"hurt myself",
		},
		Routes: map[Action]string{
			ActionGotoVenting:  PathVenting,
			ActionGotoCoaching: PathCoaching,
			ActionGotoTherapy:  PathTherapy,
		},
		HelplineURL: DefaultHelplineURL,
	}
}
