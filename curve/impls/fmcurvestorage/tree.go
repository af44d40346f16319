package fmcurvestorage

import (
	"os"
	"path/filepath"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libcurves/curve"
	"github.com/sgostarter/libeasygo/pathutils"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"
)

const manifestFileName = "manifest.yaml"

// SetTreeStorage persists curve sets as a directory tree: one directory
// per set holding a manifest plus one file per curve in the configured
// format. With fileLevels == 0 the recursion leaf is the set itself and
// the whole set goes into a single YAML file instead.
type SetTreeStorage struct {
	logger l.Wrapper

	root       string
	format     curve.SerdeFormat
	fileLevels int
}

func NewSetTreeStorage(root string, format curve.SerdeFormat, fileLevels int, logger l.Wrapper) *SetTreeStorage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &SetTreeStorage{
		logger:     logger.WithFields(l.StringField(l.ClsKey, "setTreeStorage")),
		root:       root,
		format:     format,
		fileLevels: fileLevels,
	}
}

type setManifest struct {
	SnapshotID uint64    `yaml:"snapshot_id"`
	Format     int       `yaml:"format"`
	Keys       []float32 `yaml:"keys"`
}

func (impl *SetTreeStorage) setDir(name string) string {
	return filepath.Join(impl.root, name)
}

func (impl *SetTreeStorage) setFileName(name string) string {
	return filepath.Join(impl.root, name+"."+curve.FormatYAML.Ext())
}

func (impl *SetTreeStorage) curveFileName(dir string, key float32, format curve.SerdeFormat) string {
	return filepath.Join(dir, cast.ToString(key)+"."+format.Ext())
}

// SaveSet writes the named set. Each save gets a fresh snapshot ID
// recorded in the manifest.
func (impl *SetTreeStorage) SaveSet(name string, s *curve.CurveSetF32) error {
	if impl.fileLevels == 0 {
		data, err := s.Marshal(curve.FormatYAML)
		if err != nil {
			return err
		}

		_ = pathutils.MustDirExists(impl.root)

		return os.WriteFile(impl.setFileName(name), data, 0600)
	}

	dir := impl.setDir(name)
	_ = pathutils.MustDirExists(dir)

	manifest := &setManifest{
		SnapshotID: snowflake.ID(),
		Format:     int(impl.format),
	}

	for _, e := range s.Entries() {
		data, err := e.Curve.Marshal(impl.format)
		if err != nil {
			return err
		}

		if err = os.WriteFile(impl.curveFileName(dir, e.Key, impl.format), data, 0600); err != nil {
			return err
		}

		manifest.Keys = append(manifest.Keys, e.Key)
	}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return err
	}

	impl.logger.Debug("saved curve set snapshot:", manifest.SnapshotID)

	return os.WriteFile(filepath.Join(dir, manifestFileName), data, 0600)
}

// LoadSet is the inverse of SaveSet.
func (impl *SetTreeStorage) LoadSet(name string) (*curve.CurveSetF32, error) {
	if impl.fileLevels == 0 {
		data, err := os.ReadFile(impl.setFileName(name))
		if err != nil {
			if os.IsNotExist(err) {
				err = commerr.ErrNotFound
			}

			return nil, err
		}

		return curve.UnmarshalCurveSetF32(data, curve.FormatYAML)
	}

	dir := impl.setDir(name)

	data, err := os.ReadFile(filepath.Join(dir, manifestFileName))
	if err != nil {
		if os.IsNotExist(err) {
			err = commerr.ErrNotFound
		}

		return nil, err
	}

	var manifest setManifest

	if err = yaml.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}

	format := curve.SerdeFormat(manifest.Format)

	s := curve.NewCurveSetF32()

	for _, key := range manifest.Keys {
		data, err = os.ReadFile(impl.curveFileName(dir, key, format))
		if err != nil {
			return nil, err
		}

		c, err := curve.UnmarshalIrregularF32(data, format)
		if err != nil {
			return nil, err
		}

		s.AddCurve(key, c)
	}

	return s, nil
}
