package classify

// Gate classifier labels. The gate decides whether an upload is a medical
// X-ray at all before any body-part model is consulted.
const (
	GateModel        = "primary"
	GateValidLabel   = "Ray"
	GateInvalidLabel = "Not Ray"
)

// GateLabels is the ordered label set of the gate classifier.
var GateLabels = []string{GateValidLabel, GateInvalidLabel}

// BodyPartLabels maps each supported body-part key to the fixed ordered
// label set of its classifier. Keys are case-sensitive and match the
// bodyPart values clients send. Distinct classifiers never share label sets.
var BodyPartLabels = map[string][]string{
	"Chest": {
		"Air Embolism Conditions",
		"Chronic Obstructive Pulmonary",
		"Encapsulated Lesions",
		"Mediastinal Disorders",
		"Normal Anatomy",
		"Pleural Pathologies",
		"Pneumonia",
		"Pulmonary Fibrotic",
		"Thoracic Abnormalities",
	},
	"Eye": {
		"Age-related Macular Degeneration",
		"Choroidal Neovascularization",
		"Central Serous Retinopathy",
		"Diabetic Macular Edema",
		"Diabetic Retinopathy",
		"DRUSEN",
		"Macular Hole",
		"NORMAL",
	},
	"Bones": {
		"Avulsion fracture",
		"Comminuted fracture",
		"Fracture Dislocation",
		"Greenstick fracture",
		"Hairline Fracture",
		"Impacted fracture",
		"Longitudinal fracture",
		"Oblique fracture",
		"Pathological fracture",
		"Spiral Fracture",
	},
	"Nail":   {"Healthy", "Onychomycosis", "Psoriasis"},
	"Skin":   {"benign", "malignant"},
	"Kidney": {"Normal", "Tumor"},
	"Lung":   {"benign", "malignant", "Normal"},
	"Brain":  {"glioma", "meningioma", "Normal", "pituitary"},
}
