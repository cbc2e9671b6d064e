package sdf

import (
	"os"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"go.viam.com/sdf/element"
	"go.viam.com/sdf/framegraph"
)

// LoadJointFile reads a file holding a single <joint> document, loads it
// against the shared frame graph, and logs one warning per accumulated load
// error. The returned joint is populated as far as the parse got even when an
// error is returned; callers decide whether a partial parse is acceptable.
func LoadJointFile(filename string, graph *framegraph.Graph, logger golog.Logger) (*Joint, error) {
	//nolint:gosec
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read SDF file")
	}

	root, err := element.ParseString(string(data))
	if err != nil {
		return nil, err
	}

	joint := NewJoint()
	loadErrs := joint.Load(root, graph)
	for _, loadErr := range loadErrs {
		logger.Warnw("joint load error", "code", loadErr.Code.String(), "message", loadErr.Message)
	}
	return joint, loadErrs.Err()
}
