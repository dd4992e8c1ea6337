package response

import (
	"regexp"
	"strings"

	"github.com/arloliu/go-b1500/constants"
)

// emptySlotModel is the model reported for a slot without an installed module.
const emptySlotModel = "0"

var moduleInfoRegexp = regexp.MustCompile(`;?(?P<model>\w+),(?P<revision>\d+)`)

// ModuleInventory maps the slot number to the model name of the installed module.
type ModuleInventory map[constants.SlotNr]string

// ParseModuleQueryResponse extracts the installed module information from the
// response of the `UNT? 0` query.
//
// Each `model,revision` pair is assigned the next slot number starting from 1, in the
// order it appears in the response. The revision is discarded. Slots reporting the
// model "0" have no module installed and are left out of the result.
//
// The grammar is permissive: a response without any pair yields an empty inventory.
//
// The response is treated as ASCII: a model is a run of [0-9A-Za-z_] and a revision
// a run of [0-9]. The returned models do not share memory with resp.
func ParseModuleQueryResponse(resp string) ModuleInventory {
	matches := moduleInfoRegexp.FindAllStringSubmatch(resp, -1)
	modelIdx := moduleInfoRegexp.SubexpIndex("model")

	inventory := make(ModuleInventory, len(matches))
	for i, match := range matches {
		model := match[modelIdx]
		if model == emptySlotModel {
			continue
		}
		inventory[constants.SlotNr(i+1)] = strings.Clone(model)
	}

	return inventory
}
