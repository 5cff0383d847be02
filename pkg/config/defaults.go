package config

// Default returns the built-in configuration. The rule order is
// load-bearing: shadow-brutal-lg and hover:shadow-brutal must be rewritten
// before the bare shadow-brutal rule runs, or the bare rule fires inside
// their longer matches (hover:shadow-sm instead of hover:shadow-md).
func Default() *Config {
	return &Config{
		Restyle: &RestyleConfig{
			Files: []string{
				"src/components/TestCaseRowNormal.tsx",
				"src/components/TestCaseRowTeaching.tsx",
				"src/components/TableFilters.tsx",
			},
			Rules: []Replacement{
				{Pattern: `border-b-4 border-black`, Replace: `border-b`},
				{Pattern: `border-r-4 border-black`, Replace: `border-r`},
				{Pattern: `border-t-4 border-black`, Replace: `border-t`},
				{Pattern: `border-l-4 border-black`, Replace: `border-l`},
				{Pattern: `border-brutal`, Replace: `border rounded-lg`},
				{Pattern: `shadow-brutal-lg`, Replace: `shadow-md`},
				{Pattern: `hover:shadow-brutal`, Replace: `hover:shadow-md`},
				{Pattern: `shadow-brutal`, Replace: `shadow-sm`},
				{Pattern: `font-black`, Replace: `font-semibold`},
				{Pattern: `border-2 border-black`, Replace: `border`},
			},
		},
		Inject: &InjectConfig{
			Sentinel: "codeChange",
			Field:    "organisationalPressure",
			Value:    "1",
		},
	}
}
