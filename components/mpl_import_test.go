package components_test

// Blank import registers the plotting backends so Draw("mpl") works in tests.
import _ "github.com/qlbm-go/qlbm/draw/mpl"
