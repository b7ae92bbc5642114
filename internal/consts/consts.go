package consts

const (
	DefaultRegion = "us-east-1"

	DefaultPromptsTable = "PromptsTable"
	DefaultLabelsTable  = "LabelsTable"

	DefaultImageModelID    = "stability.stable-diffusion-xl-v1"
	DefaultOutpaintModelID = "amazon.titan-image-generator-v1"
	DefaultTextModelID     = "anthropic.claude-v2"

	DefaultSeed           int64 = 42
	DefaultStyle                = "photographic"
	DefaultOutpaintPrompt       = "Expand the scene"
	DefaultOutpaintSize         = 512
	DefaultRating               = 5
	MinRating                   = 1
	MaxRating                   = 10

	EmptyLabels = "N/A"
)

type Function string

const (
	GenerateImage  Function = "generate_image"
	Outpaint       Function = "outpaint"
	OptimizePrompt Function = "optimize_prompt"
	SavePrompt     Function = "save_prompt"
	AddLabel       Function = "add_label"
)

func (f Function) String() string {
	return string(f)
}

var Functions = []Function{GenerateImage, Outpaint, OptimizePrompt, SavePrompt, AddLabel}

type StoreSupplier string

const (
	DynamoDB StoreSupplier = "dynamodb"
	MySQL    StoreSupplier = "mysql"
	Memory   StoreSupplier = "memory"
)

func (s StoreSupplier) String() string {
	return string(s)
}

type InvokeMode string

const (
	InvokeLambda InvokeMode = "lambda"
	InvokeLocal  InvokeMode = "local"
)

func (m InvokeMode) String() string {
	return string(m)
}

// LabelPolicy decides what add-label does when the label already exists.
type LabelPolicy string

const (
	LabelUpsert LabelPolicy = "upsert"
	LabelReject LabelPolicy = "reject"
)

func (p LabelPolicy) String() string {
	return string(p)
}

type MaskMode string

const (
	MaskPrompt MaskMode = "prompt"
	MaskImage  MaskMode = "image"
)

func (m MaskMode) String() string {
	return string(m)
}

type OutpaintingMode string

const (
	OutpaintingDefault OutpaintingMode = "DEFAULT"
	OutpaintingPrecise OutpaintingMode = "PRECISE"
)

func (m OutpaintingMode) String() string {
	return string(m)
}

type Dimension struct {
	Label  string `json:"label"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// DimensionOptions are the output sizes accepted by the outpainting model.
var DimensionOptions = []Dimension{
	{Label: "512 x 512 (1:1)", Width: 512, Height: 512},
	{Label: "768 x 768 (1:1)", Width: 768, Height: 768},
	{Label: "1024 x 1024 (1:1)", Width: 1024, Height: 1024},
	{Label: "1152 x 640 (16:9)", Width: 1152, Height: 640},
	{Label: "640 x 1152 (9:16)", Width: 640, Height: 1152},
	{Label: "1152 x 768 (3:2)", Width: 1152, Height: 768},
	{Label: "768 x 1152 (2:3)", Width: 768, Height: 1152},
	{Label: "1408 x 640 (11:5)", Width: 1408, Height: 640},
}

func DimensionByLabel(label string) (Dimension, bool) {
	for _, d := range DimensionOptions {
		if d.Label == label {
			return d, true
		}
	}
	return Dimension{}, false
}

var StylePresets = []string{
	"photographic", "3d-model", "analog-film", "anime", "cinematic", "comic-book",
	"digital-art", "enhance", "fantasy-art", "isometric", "line-art", "low-poly",
	"modeling-compound", "neon-punk", "origami", "pixel-art", "tile-texture",
}
