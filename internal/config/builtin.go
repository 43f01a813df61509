package config

// Fixed capacities of the window manager. These bound all per-workspace
// state so memory usage is known up front.
const (
	MaxWindowsPerWorkspace = 6
	WorkspaceCount         = 4
)

// Rendering constants shared by the differ and the layout engine.
const (
	TopBarHeight            = 24
	FocusedBorderMultiplier = 3
	MaxTitleLength          = 31
	SymbolWidth             = 8
	SymbolHeight            = 8
)

// Colors (ARGB, alpha ignored by 32bpp surfaces).
const (
	ColorBorderNormal uint32 = 0x928374
	ColorWindowBG     uint32 = 0x282828
	ColorBarBG        uint32 = 0x1d2021
	ColorEmptyDesktop uint32 = 0x3c3836
)

const (
	DefaultGapSize     = 4
	DefaultBorderSize  = 2
	DefaultMasterRatio = 50
	// Master-stack gets a wider master pane by default.
	MasterStackRatio = 60
)

// BuiltinLayouts returns the compiled-in configuration for each layout
// variant. CycleLayout resets to these (or their YAML overrides) rather
// than preserving any prior per-variant customization.
func BuiltinLayouts() map[LayoutType]Layout {
	return map[LayoutType]Layout{
		LayoutHorizontal: {
			Type:        LayoutHorizontal,
			GapSize:     DefaultGapSize,
			BorderSize:  DefaultBorderSize,
			BorderColor: ColorBorderNormal,
			MasterRatio: DefaultMasterRatio,
		},
		LayoutVertical: {
			Type:        LayoutVertical,
			GapSize:     DefaultGapSize,
			BorderSize:  DefaultBorderSize,
			BorderColor: ColorBorderNormal,
			MasterRatio: DefaultMasterRatio,
		},
		LayoutGrid: {
			Type:        LayoutGrid,
			GapSize:     DefaultGapSize,
			BorderSize:  DefaultBorderSize,
			BorderColor: ColorBorderNormal,
			MasterRatio: DefaultMasterRatio,
		},
		LayoutFullscreen: {
			Type:        LayoutFullscreen,
			GapSize:     DefaultGapSize,
			BorderSize:  DefaultBorderSize,
			BorderColor: ColorBorderNormal,
			MasterRatio: DefaultMasterRatio,
		},
		LayoutMasterStack: {
			Type:        LayoutMasterStack,
			GapSize:     DefaultGapSize,
			BorderSize:  DefaultBorderSize,
			BorderColor: ColorBorderNormal,
			MasterRatio: MasterStackRatio,
		},
	}
}
