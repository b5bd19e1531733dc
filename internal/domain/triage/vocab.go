package triage

// Fixed clinical vocabularies backing the rule engine. All matching against
// these lists is case-insensitive substring search; the lists themselves are
// lowercase and must stay that way.

var emergencySymptoms = []string{
	"chest pain",
	"shortness of breath",
	"loss of consciousness",
	"seizure",
	"difficulty speaking",
	"difficulty walking",
	"severe bleeding",
	"confusion",
	"stroke",
	"heart attack",
}

var cardiacSymptoms = []string{
	"chest pain",
	"palpitations",
	"shortness of breath",
	"dizziness",
	"swelling",
	"fatigue",
}

var neuroSymptoms = []string{
	"headache",
	"seizure",
	"loss of consciousness",
	"confusion",
	"numbness/tingling",
	"difficulty speaking",
	"difficulty walking",
	"vision changes",
	"dizziness",
	"muscle weakness",
}

var pulmonarySymptoms = []string{
	"cough",
	"shortness of breath",
	"wheezing",
	"chest tightness",
}

var giSymptoms = []string{
	"abdominal pain",
	"nausea",
	"vomiting",
	"diarrhea",
	"weight loss",
	"bleeding",
}

// voiceSymptomKeywords are the terms recognised in free-text voice
// transcripts. Broader than the UI picker list on purpose.
var voiceSymptomKeywords = []string{
	"chest pain", "headache", "dizziness", "nausea", "vomiting",
	"fever", "cough", "shortness of breath", "fatigue", "back pain",
	"abdominal pain", "joint pain", "sore throat", "numbness",
	"tingling", "palpitations", "swelling", "bleeding",
	"confusion", "seizure", "loss of consciousness", "difficulty speaking",
	"difficulty walking", "vision changes", "muscle weakness", "weight loss",
}

var severityWords = []string{
	"severe", "intense", "unbearable", "worst", "sudden",
	"sharp", "constant", "worsening", "radiating", "crushing",
	"excruciating", "terrible", "extreme", "critical",
}

// ehrSymptomKeywords lean clinical (dyspnea, paresthesia) because EHR notes
// use chart language rather than patient language.
var ehrSymptomKeywords = []string{
	"chest pain", "headache", "dizziness", "nausea", "vomiting",
	"fever", "cough", "dyspnea", "fatigue", "back pain",
	"abdominal pain", "arthralgia", "pharyngitis", "paresthesia",
	"palpitations", "edema", "hemorrhage", "syncope", "seizure",
	"aphasia", "ataxia", "diplopia", "myalgia", "cachexia",
}

var abnormalFindingKeywords = []string{
	"elevated", "abnormal", "irregular", "tachycardia", "bradycardia",
	"hypertension", "hypotension", "tachypnea", "hypoxia", "arrhythmia",
	"murmur", "edema", "cyanosis", "diaphoresis", "altered mental status",
	"positive troponin", "st elevation", "st depression", "anemia",
}

var chronicConditionKeywords = []string{
	"diabetes", "hypertension", "heart disease", "asthma", "copd",
	"stroke", "cancer", "kidney disease", "liver disease", "obesity",
	"thyroid", "epilepsy", "depression", "anxiety", "arthritis",
	"coronary artery disease", "chf", "heart failure", "atrial fibrillation",
}

var highRiskConditions = []string{"heart disease", "stroke history", "cancer", "kidney disease"}

var moderateRiskConditions = []string{"diabetes", "hypertension", "asthma", "copd", "obesity"}

// SymptomOptions is the controlled symptom vocabulary shared with UI pickers
// and upstream extractors. The engine's own keyword lists above are
// intentionally not kept in lockstep with it.
var SymptomOptions = []string{
	"Chest Pain", "Shortness of Breath", "Headache", "Fever", "Dizziness",
	"Nausea", "Vomiting", "Abdominal Pain", "Back Pain", "Fatigue",
	"Cough", "Sore Throat", "Joint Pain", "Muscle Weakness", "Vision Changes",
	"Numbness/Tingling", "Palpitations", "Swelling", "Weight Loss",
	"Loss of Consciousness", "Seizure", "Confusion", "Difficulty Speaking",
	"Difficulty Walking", "Bleeding",
}

// ConditionOptions is the controlled pre-existing condition vocabulary.
var ConditionOptions = []string{
	"Diabetes", "Hypertension", "Heart Disease", "Asthma", "COPD",
	"Stroke History", "Cancer", "Kidney Disease", "Liver Disease", "Obesity",
	"Thyroid Disorder", "Epilepsy", "Depression", "Anxiety", "Arthritis",
}

// Departments is the fixed routing vocabulary. The router only ever emits a
// subset of these; Orthopedics exists for UI parity.
var Departments = []string{
	"General Medicine", "Cardiology", "Emergency", "Neurology",
	"Orthopedics", "Pulmonology", "Gastroenterology",
}

// LanguageNames maps supported language codes to display names.
var LanguageNames = map[string]string{
	"en": "English",
	"es": "Español",
	"fr": "Français",
	"de": "Deutsch",
	"hi": "हिन्दी",
	"ta": "தமிழ்",
	"te": "తెలుగు",
	"zh": "中文",
	"ar": "العربية",
	"ja": "日本語",
}

// localizedDisclaimers hold the translated triage disclaimer appended to the
// clinical reasoning for non-English requests. Unsupported codes fall back to
// English (no block appended).
var localizedDisclaimers = map[string]string{
	"es": "Esta es una evaluación de triaje solamente. Se requiere evaluación clínica por un médico calificado.",
	"fr": "Il s'agit uniquement d'une évaluation de triage. Une évaluation clinique par un médecin qualifié est requise.",
	"de": "Dies ist nur eine Triage-Bewertung. Eine klinische Bewertung durch einen qualifizierten Arzt ist erforderlich.",
	"hi": "यह केवल एक ट्राइएज मूल्यांकन है। एक योग्य चिकित्सक द्वारा निश्चित नैदानिक मूल्यांकन आवश्यक है।",
	"ta": "இது ஒரு ட்ரையேஜ் மதிப்பீடு மட்டுமே. தகுதியான மருத்துவரின் மருத்துவ மதிப்பீடு தேவை.",
	"te": "ఇది ట్రయేజ్ అంచనా మాత్రమే. అర్హత కలిగిన వైద్యునిచే కచ్చితమైన వైద్య మూల్యాంకనం అవసరం.",
	"zh": "这只是分诊评估。需要合格医生进行确定性临床评估。",
	"ar": "هذا تقييم فرز فقط. مطلوب تقييم سريري نهائي من قبل طبيب مؤهل.",
	"ja": "これはトリアージレベルの評価のみです。資格のある医師による確定的な臨床評価が必要です。",
}
