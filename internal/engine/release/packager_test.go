package release_test

import (
	"archive/zip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/bccproj/internal/adapters/archive"
	"go.trai.ch/bccproj/internal/adapters/fs"
	"go.trai.ch/bccproj/internal/core/domain"
	"go.trai.ch/bccproj/internal/core/ports/mocks"
	"go.trai.ch/bccproj/internal/engine/release"
	"go.uber.org/mock/gomock"
)

type fakeCompiler struct {
	calls int
	err   error
}

func (c *fakeCompiler) CompileAll(_ context.Context, _ *domain.Task) error {
	c.calls++
	return c.err
}

type fixture struct {
	compiler *fakeCompiler
	prober   *mocks.MockVersionProber
	archiver *mocks.MockArchiver
	hasher   *mocks.MockHasher
	logger   *mocks.MockLogger
	ctrl     *gomock.Controller
	task     *domain.Task
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		compiler: &fakeCompiler{},
		prober:   mocks.NewMockVersionProber(ctrl),
		archiver: mocks.NewMockArchiver(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
		ctrl:     ctrl,
	}
	f.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	f.task = domain.NewTask("bccproj", []string{"release"}, domain.NewLayout(t.TempDir()), domain.DefaultConfig())
	return f
}

func (f *fixture) packager() *release.Packager {
	return release.New(f.compiler, f.prober, f.archiver, f.hasher, f.logger)
}

func (f *fixture) expectArchive(target domain.Target, version string) {
	layout := f.task.Layout
	a := mocks.NewMockArchive(f.ctrl)
	dest := layout.ReleaseArchive(version, target)

	f.prober.EXPECT().Probe(gomock.Any(), f.task, layout.TargetExe(target)).Return(version, nil)
	f.archiver.EXPECT().Create(dest).Return(a, nil)
	for _, e := range layout.ReleaseEntries(target) {
		a.EXPECT().AddFile(e.Source, e.Name).Return(nil)
	}
	a.EXPECT().Commit().Return(nil)
	f.hasher.EXPECT().HashFile(dest).Return("0123456789abcdef", nil)
}

func TestRelease(t *testing.T) {
	f := newFixture(t)
	f.expectArchive(domain.TargetX86, "1.2.0")
	f.expectArchive(domain.TargetX64, "1.2.0")

	require.NoError(t, f.packager().Release(context.Background(), f.task))
	assert.Equal(t, 1, f.compiler.calls)
	assert.DirExists(t, f.task.Layout.ReleaseDir())
}

func TestRelease_HashFailureWarns(t *testing.T) {
	f := newFixture(t)
	layout := f.task.Layout
	for _, target := range domain.Targets {
		a := mocks.NewMockArchive(f.ctrl)
		dest := layout.ReleaseArchive("1.2.0", target)
		f.prober.EXPECT().Probe(gomock.Any(), f.task, layout.TargetExe(target)).Return("1.2.0", nil)
		f.archiver.EXPECT().Create(dest).Return(a, nil)
		a.EXPECT().AddFile(gomock.Any(), gomock.Any()).Return(nil).Times(len(layout.ReleaseEntries(target)))
		a.EXPECT().Commit().Return(nil)
		f.hasher.EXPECT().HashFile(dest).Return("", errors.New("permission denied"))
	}
	f.logger.EXPECT().Warn(gomock.Any()).Times(2)

	require.NoError(t, f.packager().Release(context.Background(), f.task))
}

func TestRelease_CompileFailure(t *testing.T) {
	f := newFixture(t)
	f.compiler.err = domain.ErrBuildFailed

	err := f.packager().Release(context.Background(), f.task)
	require.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.NoDirExists(t, f.task.Layout.ReleaseDir())
}

func TestRelease_EmptyVersionCreatesNoArchive(t *testing.T) {
	f := newFixture(t)
	f.prober.EXPECT().Probe(gomock.Any(), f.task, gomock.Any()).Return("", domain.ErrVersionProbeEmpty)

	err := f.packager().Release(context.Background(), f.task)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrVersionProbeEmpty.Error())
}

func TestRelease_NonSemverWarns(t *testing.T) {
	f := newFixture(t)
	f.expectArchive(domain.TargetX86, "nightly")
	f.expectArchive(domain.TargetX64, "nightly")
	f.logger.EXPECT().Warn(gomock.Any()).Times(2)

	require.NoError(t, f.packager().Release(context.Background(), f.task))
}

func TestRelease_AddFileFailureDiscards(t *testing.T) {
	f := newFixture(t)
	layout := f.task.Layout
	a := mocks.NewMockArchive(f.ctrl)
	cause := errors.New("open lib/zcommon.bcs: no such file or directory")

	f.prober.EXPECT().Probe(gomock.Any(), f.task, layout.TargetExe(domain.TargetX86)).Return("1.0.0", nil)
	f.archiver.EXPECT().Create(layout.ReleaseArchive("1.0.0", domain.TargetX86)).Return(a, nil)
	gomock.InOrder(
		a.EXPECT().AddFile(layout.TargetExe(domain.TargetX86), domain.ExeName).Return(nil),
		a.EXPECT().AddFile(gomock.Any(), "lib/zcommon.bcs").Return(cause),
		a.EXPECT().Discard().Return(nil),
	)

	err := f.packager().Release(context.Background(), f.task)
	require.ErrorIs(t, err, cause)
}

func TestRelease_SecondTargetFailureKeepsFirst(t *testing.T) {
	f := newFixture(t)
	f.expectArchive(domain.TargetX86, "1.0.0")
	f.prober.EXPECT().Probe(gomock.Any(), f.task, f.task.Layout.TargetExe(domain.TargetX64)).
		Return("", domain.ErrVersionProbeFailed)

	err := f.packager().Release(context.Background(), f.task)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrVersionProbeFailed.Error())
}

func TestRelease_WritesArchives(t *testing.T) {
	ctrl := gomock.NewController(t)
	prober := mocks.NewMockVersionProber(ctrl)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	root := t.TempDir()
	task := domain.NewTask("bccproj", []string{"release"}, domain.NewLayout(root), domain.DefaultConfig())
	for _, target := range domain.Targets {
		for _, e := range task.Layout.ReleaseEntries(target) {
			require.NoError(t, os.MkdirAll(filepath.Dir(e.Source), 0o750))
			require.NoError(t, os.WriteFile(e.Source, []byte(e.Name), 0o600))
		}
	}
	prober.EXPECT().Probe(gomock.Any(), task, gomock.Any()).Return("2.0.1", nil).Times(2)

	p := release.New(&fakeCompiler{}, prober, archive.NewZip(), fs.NewHasher(), log)
	require.NoError(t, p.Release(context.Background(), task))

	entries, err := os.ReadDir(task.Layout.ReleaseDir())
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"bcc-2.0.1-32bit.zip", "bcc-2.0.1-64bit.zip"}, names)

	r, err := zip.OpenReader(filepath.Join(task.Layout.ReleaseDir(), "bcc-2.0.1-64bit.zip"))
	require.NoError(t, err)
	defer r.Close()

	var files []string
	for _, file := range r.File {
		files = append(files, file.Name)
	}
	sort.Strings(files)
	assert.Equal(t, []string{
		domain.ExeName,
		"lib/acs/README.txt",
		"lib/zcommon.bcs",
		"lib/zcommon.h.bcs",
		"readme.txt",
	}, files)
}
