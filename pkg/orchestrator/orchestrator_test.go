package orchestrator

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kissoflove/mvcgen/pkg/naming"
	"github.com/kissoflove/mvcgen/pkg/widgetlist"
)

func documentOf(t *testing.T, text string) *widgetlist.Document {
	t.Helper()
	doc, err := widgetlist.NewDocument(widgetlist.SourceFromFS("widgets.txt"), []byte(text))
	require.NoError(t, err)
	return &doc
}

func TestGenerateComboBoxScenario(t *testing.T) {
	gen := New()

	result, err := gen.Generate(context.Background(), Request{
		Document: documentOf(t, "comboBox_test\n"),
	})
	require.NoError(t, err)
	require.Empty(t, result.Warnings)
	require.Len(t, result.Files, 4)

	byName := map[string]string{}
	var order []string
	for _, file := range result.Files {
		byName[file.Name] = string(file.Contents)
		order = append(order, file.FileName)
	}
	assert.Equal(t, []string{"views.py", "controllers.py", "model.py", "main.py"}, order)

	view := byName["view"]
	assert.Contains(t, view, "def test(self):")
	assert.Contains(t, view, "def test_enabled(self):")
	assert.Contains(t, view, "setModel(self._model.test_model)")
	assert.Contains(t, view, "currentIndexChanged.connect(self.on_test)")
	assert.Contains(t, view, "self.test = self._model.test")

	controller := byName["controller"]
	assert.Contains(t, controller, "def change_test(self, index):")
	assert.Contains(t, controller, "self.model.test = index")

	model := byName["model"]
	assert.Contains(t, model, "def test_items(self):")
	assert.Contains(t, model, "self.test_model = QStringListModel()")
	assert.Contains(t, model, "('test', 'getint'),")

	app := byName["app"]
	assert.Contains(t, app, "self.model = Model()")
	assert.Contains(t, app, "self.main_controller = MainController(self.model)")
	assert.Contains(t, app, "self.main_view = MainView(self.model, self.main_controller)")
}

func TestGenerateCollectsWarnings(t *testing.T) {
	gen := New()

	result, err := gen.Generate(context.Background(), Request{
		Document: documentOf(t, "lineEdit_name\nmystery_x\n"),
	})
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, 2, result.Warnings[0].Line)
	assert.Contains(t, result.Warnings[0].Message, `unknown widget type "mystery"`)
}

func TestGenerateDuplicateAborts(t *testing.T) {
	gen := New()

	_, err := gen.Generate(context.Background(), Request{
		Document: documentOf(t, "comboBox_test\ncheckBox_test\n"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate logical name "test"`)
}

func TestGenerateRequiresSourceOrDocument(t *testing.T) {
	gen := New()

	_, err := gen.Generate(context.Background(), Request{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source or document is required")
}

func TestGenerateLoadsFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"widgets.txt": &fstest.MapFile{Data: []byte("pushButton_go\n")},
	}
	gen := New(WithLoader(newFSLoader(fsys)))

	result, err := gen.Generate(context.Background(), Request{
		Source: widgetlist.SourceFromFS("widgets.txt"),
	})
	require.NoError(t, err)
	require.Len(t, result.Files, 4)
	assert.Contains(t, string(result.Files[1].Contents), "def change_go(self, value):")
}

func TestGenerateWithScheme(t *testing.T) {
	gen := New(WithScheme(naming.Scheme{
		ViewClass:  "EditorView",
		ViewModule: "editor_views",
	}))

	result, err := gen.Generate(context.Background(), Request{
		Document: documentOf(t, "lineEdit_name\n"),
	})
	require.NoError(t, err)

	assert.Equal(t, "editor_views.py", result.Files[0].FileName)
	assert.Contains(t, string(result.Files[0].Contents), "class EditorView(QtWidgets.QMainWindow):")
	assert.Contains(t, string(result.Files[0].Contents), "from ui_editor_view import Ui_EditorView")
}

func TestGenerateWithNamingFS(t *testing.T) {
	fsys := fstest.MapFS{
		"naming.yaml": &fstest.MapFile{Data: []byte("controllerClass: EditorController\n")},
	}
	gen := New(WithNamingFS(fsys))

	result, err := gen.Generate(context.Background(), Request{
		Document: documentOf(t, "lineEdit_name\n"),
	})
	require.NoError(t, err)
	assert.Contains(t, string(result.Files[1].Contents), "class EditorController:")
}

func TestGenerateWithRendererSubset(t *testing.T) {
	gen := New(WithRenderers("model"))

	result, err := gen.Generate(context.Background(), Request{
		Document: documentOf(t, "checkBox_active\n"),
	})
	require.NoError(t, err)
	require.Len(t, result.Files, 1)
	assert.Equal(t, "model.py", result.Files[0].FileName)
}

func TestGenerateUnknownRenderer(t *testing.T) {
	gen := New(WithRenderers("bogus"))

	_, err := gen.Generate(context.Background(), Request{
		Document: documentOf(t, "checkBox_active\n"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `renderer "bogus"`)
}

func TestGenerateNilContext(t *testing.T) {
	gen := New()

	_, err := gen.Generate(nil, Request{Document: documentOf(t, "lineEdit_name\n")}) //nolint:staticcheck
	require.Error(t, err)
}

func newFSLoader(fsys fstest.MapFS) widgetlist.Loader {
	return loaderFunc(func(ctx context.Context, src widgetlist.Source) (widgetlist.Document, error) {
		data, err := fsys.ReadFile(src.Location())
		if err != nil {
			return widgetlist.Document{}, err
		}
		return widgetlist.NewDocument(src, data)
	})
}

type loaderFunc func(ctx context.Context, src widgetlist.Source) (widgetlist.Document, error)

func (f loaderFunc) Load(ctx context.Context, src widgetlist.Source) (widgetlist.Document, error) {
	return f(ctx, src)
}
