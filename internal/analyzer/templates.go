package analyzer

import "github.com/seenimoa/multibagger/pkg/models"

// Placeholders substituted into the text templates below.
const (
	phCompany = "{company}"
	phSector  = "{sector}"
)

// Fallback phrases used when no sector was selected.
const (
	strengthSectorFallback = "इस सेक्टर"
	outlookSectorFallback  = "यह सेक्टर"
)

// growthLabels are the candidate growth-potential labels per tier.
var growthLabels = map[models.Tier][]string{
	models.TierHigh:   {"3-5X संभावित रिटर्न", "5-10X संभावित रिटर्न", "10X+ संभावित रिटर्न"},
	models.TierMedium: {"2-3X संभावित रिटर्न", "1.5-2.5X संभावित रिटर्न"},
	models.TierLow:    {"1.5X संभावित रिटर्न", "सीमित वृद्धि क्षमता"},
}

// strengthTemplates is the ordered strength pool. An analysis takes a
// prefix of it.
var strengthTemplates = [...]string{
	phCompany + " के पास मजबूत प्रबंधन टीम और स्पष्ट विजन है",
	phSector + " में बढ़ती मांग और market opportunity",
	"नवीन उत्पाद और सेवाएं जो बाजार में अलग पहचान बना रही हैं",
	"मजबूत वित्तीय स्थिति और कैश फ्लो",
	"उच्च गुणवत्ता वाले ग्राहक आधार और ब्रांड वैल्यू",
}

// riskTemplates is the ordered risk pool.
var riskTemplates = [...]string{
	"बाजार में प्रतिस्पर्धा बढ़ रही है",
	"नियामक परिवर्तनों का संभावित प्रभाव",
	"वैश्विक आर्थिक परिस्थितियों पर निर्भरता",
	"कच्चे माल की कीमतों में उतार-चढ़ाव",
	"तकनीकी व्यवधान का जोखिम",
}

// Prefix sizes drawn for the strength and risk lists.
const (
	minStrengths = 3
	maxStrengths = 4
	minRisks     = 2
	maxRisks     = 3
)

// tierText holds the deterministic per-tier texts.
type tierText struct {
	recommendation string
	timeHorizon    string
	riskLevel      string
}

var tierTexts = map[models.Tier]tierText{
	models.TierHigh: {
		recommendation: phCompany + " एक उत्कृष्ट multibagger अवसर प्रतीत होती है। लंबी अवधि के निवेश के लिए अनुकूल। SIP या lump sum निवेश दोनों उचित हो सकते हैं। हालांकि, अपने वित्तीय सलाहकार से परामर्श अवश्य करें।",
		timeHorizon:    "3-7 साल",
		riskLevel:      "मध्यम जोखिम (Medium Risk)",
	},
	models.TierMedium: {
		recommendation: phCompany + " में मध्यम से अच्छी growth potential है। सावधानीपूर्वक और चरणबद्ध निवेश की सिफारिश की जाती है। पोर्टफोलियो में 5-10% से अधिक निवेश न करें।",
		timeHorizon:    "5-10 साल",
		riskLevel:      "मध्यम-उच्च जोखिम (Medium-High Risk)",
	},
	models.TierLow: {
		recommendation: phCompany + " में वर्तमान में सीमित multibagger potential दिख रहा है। बेहतर अवसरों की तलाश करें या इस कंपनी के प्रदर्शन में सुधार का इंतजार करें।",
		timeHorizon:    "7+ साल",
		riskLevel:      "उच्च जोखिम (High Risk)",
	},
}

// genericOutlook is used for sectors without a bespoke paragraph.
const genericOutlook = phSector + " में अच्छी growth potential और बाजार के अवसर मौजूद हैं। दीर्घकालिक दृष्टिकोण से यह आकर्षक निवेश क्षेत्र हो सकता है।"
