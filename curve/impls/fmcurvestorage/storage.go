package fmcurvestorage

import (
	"os"
	"path/filepath"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/libcurves/curve"
	"github.com/sgostarter/libeasygo/pathutils"
)

// NewFMCurveStorage returns a curve.Storage keeping one file per key
// under root.
func NewFMCurveStorage(root string) curve.Storage {
	return &fmStorageImpl{
		root: root,
	}
}

type fmStorageImpl struct {
	root string
}

func (impl *fmStorageImpl) fileNameByKey(key string) string {
	return filepath.Join(impl.root, key)
}

func (impl *fmStorageImpl) Save(key string, data []byte) error {
	_ = pathutils.MustDirExists(impl.root)

	return os.WriteFile(impl.fileNameByKey(key), data, 0600)
}

func (impl *fmStorageImpl) Load(key string) (data []byte, err error) {
	data, err = os.ReadFile(impl.fileNameByKey(key))
	if err != nil {
		if os.IsNotExist(err) {
			err = commerr.ErrNotFound
		}

		return
	}

	return
}
