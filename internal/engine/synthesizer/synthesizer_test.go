package synthesizer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/compdb/internal/core/domain"
	"go.trai.ch/compdb/internal/core/ports/mocks"
	"go.trai.ch/compdb/internal/engine/synthesizer"
	"go.uber.org/mock/gomock"
)

func ccLibrary(srcs ...string) *domain.BuildTarget {
	return &domain.BuildTarget{
		Label:   domain.NewLabel("//lib:foo"),
		Kind:    domain.RuleCcLibrary,
		Srcs:    srcs,
		Context: &domain.CompilationContext{QuoteIncludes: []string{"inc"}},
	}
}

func TestSynthesize_CppCompile(t *testing.T) {
	ctrl := gomock.NewController(t)
	tc := mocks.NewMockToolchain(ctrl)

	tc.EXPECT().Enabled(domain.ActionCompileCpp).Return(true)
	tc.EXPECT().CompilerPath(domain.ActionCompileCpp).Return("/usr/bin/c++", true)
	tc.EXPECT().CxxFlags().Return([]string{"-std=c++17"})
	tc.EXPECT().CompileFlags().Return([]string{"-Wall"})
	tc.EXPECT().ContextFlags(gomock.Any()).Return([]string{"-iquote", "inc", "-DFOO=1"})
	tc.EXPECT().FeatureFlags(domain.ActionCompileCpp).Return([]string{"-fPIC"})

	entry, ok := synthesizer.New().Synthesize(ccLibrary("a.cc"), "a.cc", tc)
	require.True(t, ok)

	// Quoted compiler first, then the flag groups in their fixed order.
	assert.Equal(t, `"/usr/bin/c++" -std=c++17 -Wall -iquote inc -DFOO=1 -fPIC`, entry.Command)
	assert.Equal(t, "a.cc", entry.File)
}

func TestSynthesize_FallsBackToCCompile(t *testing.T) {
	ctrl := gomock.NewController(t)
	tc := mocks.NewMockToolchain(ctrl)

	tc.EXPECT().Enabled(domain.ActionCompileCpp).Return(false)
	tc.EXPECT().Enabled(domain.ActionCompileC).Return(true)
	tc.EXPECT().CompilerPath(domain.ActionCompileC).Return("/usr/bin/cc", true)
	// C compiles must not pick up the C++-specific flags.
	tc.EXPECT().CompileFlags().Return([]string{"-O2"})
	tc.EXPECT().ContextFlags(gomock.Any()).Return(nil)
	tc.EXPECT().FeatureFlags(domain.ActionCompileC).Return(nil)

	entry, ok := synthesizer.New().Synthesize(ccLibrary("a.c"), "a.c", tc)
	require.True(t, ok)
	assert.Equal(t, `"/usr/bin/cc" -O2`, entry.Command)
}

func TestSynthesize_NoActionEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	tc := mocks.NewMockToolchain(ctrl)

	tc.EXPECT().Enabled(domain.ActionCompileCpp).Return(false)
	tc.EXPECT().Enabled(domain.ActionCompileC).Return(false)

	_, ok := synthesizer.New().Synthesize(ccLibrary("a.cc"), "a.cc", tc)
	assert.False(t, ok)
}

func TestSynthesize_NoCompilerResolved(t *testing.T) {
	ctrl := gomock.NewController(t)
	tc := mocks.NewMockToolchain(ctrl)

	tc.EXPECT().Enabled(domain.ActionCompileCpp).Return(true)
	tc.EXPECT().CompilerPath(domain.ActionCompileCpp).Return("", false)

	_, ok := synthesizer.New().Synthesize(ccLibrary("a.cc"), "a.cc", tc)
	assert.False(t, ok)
}

func TestSynthesize_FileNotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	tc := mocks.NewMockToolchain(ctrl)

	_, ok := synthesizer.New().Synthesize(ccLibrary("a.cc"), "other.cc", tc)
	assert.False(t, ok)
}

func TestSynthesize_ProtoGeneratedSource(t *testing.T) {
	ctrl := gomock.NewController(t)
	tc := mocks.NewMockToolchain(ctrl)

	tc.EXPECT().Enabled(domain.ActionCompileCpp).Return(true)
	tc.EXPECT().CompilerPath(domain.ActionCompileCpp).Return("/usr/bin/c++", true)
	tc.EXPECT().CxxFlags().Return(nil)
	tc.EXPECT().CompileFlags().Return(nil)
	tc.EXPECT().ContextFlags(gomock.Any()).Return(nil)
	tc.EXPECT().FeatureFlags(domain.ActionCompileCpp).Return(nil)

	target := &domain.BuildTarget{
		Label:   domain.NewLabel("//proto:msg_cc"),
		Kind:    domain.RuleCcProtoLibrary,
		Srcs:    []string{"proto/msg.proto"},
		Context: &domain.CompilationContext{},
	}

	entry, ok := synthesizer.New().Synthesize(target, "proto/msg.pb.cc", tc)
	require.True(t, ok)
	assert.Equal(t, `"/usr/bin/c++"`, entry.Command)
	assert.Equal(t, "proto/msg.pb.cc", entry.File)
}

func TestSynthesize_Deterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	tc := mocks.NewMockToolchain(ctrl)

	tc.EXPECT().Enabled(domain.ActionCompileCpp).Return(true).Times(2)
	tc.EXPECT().CompilerPath(domain.ActionCompileCpp).Return("/usr/bin/c++", true).Times(2)
	tc.EXPECT().CxxFlags().Return([]string{"-std=c++20"}).Times(2)
	tc.EXPECT().CompileFlags().Return(nil).Times(2)
	tc.EXPECT().ContextFlags(gomock.Any()).Return([]string{"-iquote", "inc"}).Times(2)
	tc.EXPECT().FeatureFlags(domain.ActionCompileCpp).Return(nil).Times(2)

	target := ccLibrary("a.cc")
	first, ok := synthesizer.New().Synthesize(target, "a.cc", tc)
	require.True(t, ok)
	second, ok := synthesizer.New().Synthesize(target, "a.cc", tc)
	require.True(t, ok)
	assert.Equal(t, first, second)
}
