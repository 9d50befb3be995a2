package controllers

import (
	"net/http"

	"ecotrack-be/models"

	"github.com/gin-gonic/gin"
)

// GuideController serves the static waste-disposal guide. Public reference
// data; no role gate.
type GuideController struct{}

func NewGuideController() *GuideController {
	return &GuideController{}
}

var wasteGuide = []models.WasteGuideItem{
	{
		Category:       "General Waste",
		Items:          []string{"Food-soiled packaging", "Broken ceramics", "Diapers", "Vacuum dust"},
		Description:    "Everyday refuse that cannot be recycled or composted.",
		DisposalMethod: "Place in the general waste bin for regular collection.",
	},
	{
		Category:       "Recycling",
		Items:          []string{"Paper and cardboard", "Glass bottles", "Metal cans", "Rigid plastics"},
		Description:    "Clean, dry materials that can be reprocessed.",
		DisposalMethod: "Rinse containers and place loose in the recycling bin.",
	},
	{
		Category:       "Compost",
		Items:          []string{"Fruit and vegetable scraps", "Coffee grounds", "Garden trimmings", "Eggshells"},
		Description:    "Organic material suitable for municipal composting.",
		DisposalMethod: "Place in the compost bin; no plastic bags, compostable liners only.",
	},
	{
		Category:       "Hazardous",
		Items:          []string{"Batteries", "Paint and solvents", "Fluorescent bulbs", "Electronics"},
		Description:    "Materials that must not enter regular collection streams.",
		DisposalMethod: "Book a hazardous pickup or bring to a drop-off point; never bag with general waste.",
	},
}

// GetWasteGuide returns the disposal guide entries.
func (ctl *GuideController) GetWasteGuide(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"guide": wasteGuide})
}
