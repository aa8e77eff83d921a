package workflow

import "order_manager/internal/apierror"

// Stage is one manufacturing step a physical unit passes through. Stores is
// the entry stage: it creates scanned-product rows instead of claiming them.
type Stage string

const (
	StageStores   Stage = "stores"
	StageWinding  Stage = "winding"
	StageAssembly Stage = "assembly"
	StageTesting  Stage = "testing"
	StagePacking  Stage = "packing"
	StageQC       Stage = "qc"
)

var stageByRole = map[string]Stage{
	"STORES EXECUTIVE":   StageStores,
	"WINDING EXECUTIVE":  StageWinding,
	"ASSEMBLY EXECUTIVE": StageAssembly,
	"TESTING EXECUTIVE":  StageTesting,
	"PACKING EXECUTIVE":  StagePacking,
	"QC EXECUTIVE":       StageQC,
}

var stageColumns = map[Stage]string{
	StageStores:   "stores_unit_unique_id",
	StageWinding:  "winding_unit_unique_id",
	StageAssembly: "assembly_unit_unique_id",
	StageTesting:  "testing_unit_unique_id",
	StagePacking:  "packing_unit_unique_id",
	StageQC:       "qc_unit_unique_id",
}

// StageForRole maps a caller's role name to its manufacturing stage.
func StageForRole(role string) (Stage, error) {
	stage, ok := stageByRole[role]
	if !ok {
		return "", apierror.New("role "+role+" cannot scan products", apierror.CodeInvalidRole)
	}
	return stage, nil
}

// Column returns the scanned_products column that records this stage's claim.
func (s Stage) Column() string {
	return stageColumns[s]
}

// IsEntry reports whether the stage creates units rather than claiming them.
func (s Stage) IsEntry() bool {
	return s == StageStores
}
