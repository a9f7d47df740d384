// redfishgen compiles Redfish CSDL JSON schemas into Go resource types.
//
// Usage:
//
//	redfishgen -root Service [-pattern NS.Type]... [-out resources_gen.go] schema.json...
//	redfishgen -all [-threshold N] [-out oem_gen.go] vendor.json standard.json...
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/redfish-tools/redfishgen/compiler"
	"github.com/redfish-tools/redfishgen/csdl"
	"github.com/redfish-tools/redfishgen/gen"
	"github.com/redfish-tools/redfishgen/optimizer"
)

const version = "0.2.0"

func main() {
	var entityPatterns, includeRootPatterns, neverPrunePatterns multiFlag
	root := flag.String("root", "Service", "Service root singleton name")
	flag.Var(&entityPatterns, "pattern", "Entity type pattern compiled in full; no patterns compiles everything (repeatable)")
	flag.Var(&includeRootPatterns, "include-root-pattern", "Pattern adding entity types to the root set (repeatable)")
	flag.Var(&neverPrunePatterns, "never-prune", "Pattern protecting base types from pruning (repeatable)")
	all := flag.Bool("all", false, "Compile every declared type instead of walking from the service root")
	threshold := flag.Int("threshold", 0, "With -all, compile roots from the first N documents only (0 = all)")
	configFile := flag.String("config", "", "YAML build profile (flags take precedence)")
	outFile := flag.String("out", "", "Output Go file (default: stdout)")
	pkg := flag.String("pkg", "resources", "Package name for generated code")
	acronyms := flag.Bool("acronyms", true, "Apply Go naming conventions for acronyms (ID, URL, etc.)")
	skipAbstract := flag.Bool("skip-abstract", true, "Skip abstract types in output")
	noOptimize := flag.Bool("no-optimize", false, "Keep the full inheritance chains in the output")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("redfishgen %s\n", version)
		os.Exit(0)
	}

	schemas := flag.Args()
	if *configFile != "" {
		cfg, err := loadBuildConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading config: %v\n", err)
			os.Exit(1)
		}
		if *root == "Service" && cfg.Root != "" {
			*root = cfg.Root
		}
		if *pkg == "resources" && cfg.Package != "" {
			*pkg = cfg.Package
		}
		entityPatterns = append(entityPatterns, cfg.EntityTypePatterns...)
		includeRootPatterns = append(includeRootPatterns, cfg.IncludeRootPatterns...)
		neverPrunePatterns = append(neverPrunePatterns, cfg.NeverPrunePatterns...)
		schemas = append(schemas, cfg.Schemas...)
	}
	if len(schemas) == 0 {
		fmt.Fprintln(os.Stderr, "error: no schema files given")
		flag.Usage()
		os.Exit(1)
	}

	bundle := &compiler.SchemaBundle{RootSetThreshold: *threshold}
	for _, path := range schemas {
		doc, err := csdl.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		bundle.Documents = append(bundle.Documents, doc)
	}

	entityFilter, err := compiler.NewPermissiveFilter(entityPatterns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	compileCfg := compiler.Config{EntityTypeFilter: entityFilter}

	var compiled *compiler.Compiled
	if *all {
		compiled, err = bundle.CompileAll(compileCfg)
	} else {
		includeFilter, ferr := compiler.NewRestrictiveFilter(includeRootPatterns)
		if ferr != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", ferr)
			os.Exit(1)
		}
		compiled, err = bundle.Compile([]string{*root}, includeFilter, compileCfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if !*noOptimize {
		optCfg := optimizer.DefaultConfig()
		if len(neverPrunePatterns) > 0 {
			neverPrune, ferr := compiler.NewPermissiveFilter(neverPrunePatterns)
			if ferr != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", ferr)
				os.Exit(1)
			}
			optCfg = optimizer.Config{NeverPrune: neverPrune}
		}
		compiled = optimizer.Optimize(compiled, optCfg)
	}

	var w *os.File
	if *outFile != "" {
		w, err = os.Create(*outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error creating output: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = w.Close() }()
	} else {
		w = os.Stdout
	}

	renderCfg := gen.RenderConfig{
		PackageName:  *pkg,
		UseAcronyms:  *acronyms,
		SkipAbstract: *skipAbstract,
	}
	if err := gen.Render(w, compiled, renderCfg); err != nil {
		fmt.Fprintf(os.Stderr, "error rendering: %v\n", err)
		os.Exit(1)
	}
}
