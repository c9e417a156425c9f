// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// generic_dispatcher generates the registration of the instantiations of the generic kernels of package
// pkg/generic, one per supported element kind. It is run with `go generate` from pkg/generic.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path"
	"text/template"

	"github.com/janpfeifer/must"
	"k8s.io/klog/v2"
)

type DTypeInfo struct {
	DType, GoType string
}

type DispatcherInfo struct {
	Dispatcher, Generic string
	DTypes              []DTypeInfo
}

type Data struct {
	Dispatchers []DispatcherInfo
}

var (
	// data lists the dispatchers to include, their generic function and with which set of dtypes to support.
	data = Data{
		Dispatchers: []DispatcherInfo{
			{"copyDispatcher", "copyGeneric", makeDTypes(true, true, true, true, true)},
			{"swapDispatcher", "swapGeneric", makeDTypes(true, true, true, true, true)},
			{"revDispatcher", "revGeneric", makeDTypes(true, true, true, true, true)},
			{"fillDispatcher", "fillNumber", makeDTypes(true, true, true, false, false)},
			{"fillDispatcher", "fillHalf", makeDTypes(false, false, false, true, false)},
			{"scalDispatcher", "scalInt", makeDTypes(true, true, false, false, false)},
			{"scalDispatcher", "scalFloat", makeDTypes(false, false, true, false, false)},
			{"scalDispatcher", "scalHalf", makeDTypes(false, false, false, true, false)},
			{"axpyDispatcher", "axpyInt", makeDTypes(true, true, false, false, false)},
			{"axpyDispatcher", "axpyFloat", makeDTypes(false, false, true, false, false)},
			{"dotDispatcher", "dotInt", makeDTypes(true, true, false, false, false)},
			{"dotDispatcher", "dotFloat", makeDTypes(false, false, true, false, false)},
			{"reduceDispatcher", "reduceInt", makeDTypes(true, true, false, false, false)},
			{"reduceDispatcher", "reduceFloat", makeDTypes(false, false, true, false, false)},
			{"reduceDispatcher", "reduceHalf", makeDTypes(false, false, false, true, false)},
			{"statisticDispatcher", "reduceInt", makeDTypes(true, true, false, false, false)},
			{"statisticDispatcher", "reduceFloat", makeDTypes(false, false, true, false, false)},
		},
	}
	fileName = "gen_register_dtypes.go"
)

// makeDTypes returns the list of element kinds for the selected groups. The "generic" group is []any.
func makeDTypes(ints, uints, floats, halfs, generic bool) []DTypeInfo {
	dtypes := make([]DTypeInfo, 0, 16)
	if ints {
		dtypes = append(dtypes,
			DTypeInfo{"Int8", "int8"},
			DTypeInfo{"Int16", "int16"},
			DTypeInfo{"Int32", "int32"},
			DTypeInfo{"Int64", "int64"},
		)
	}
	if uints {
		dtypes = append(dtypes,
			DTypeInfo{"Uint8", "uint8"},
			DTypeInfo{"Uint16", "uint16"},
			DTypeInfo{"Uint32", "uint32"},
			DTypeInfo{"Uint64", "uint64"},
		)
	}
	if floats {
		dtypes = append(dtypes,
			DTypeInfo{"Float32", "float32"},
			DTypeInfo{"Float64", "float64"},
		)
	}
	if halfs {
		dtypes = append(dtypes,
			DTypeInfo{"BFloat16", "bfloat16.BFloat16"},
			DTypeInfo{"Float16", "float16.Float16"},
		)
	}
	if generic {
		dtypes = append(dtypes, DTypeInfo{"Generic", "any"})
	}
	return dtypes
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	registerTemplate := template.Must(
		template.
			New(fileName).
			Parse(

				`/***** File generated by ./internal/cmd/generic_dispatcher. Don't edit it directly. *****/

package generic

import (
	"github.com/gomlx/strided/pkg/core/dtypes"
	"github.com/gomlx/strided/pkg/core/dtypes/bfloat16"
	"github.com/x448/float16"
)

func init() {
{{- range .Dispatchers}}

	// {{.Dispatcher}}: {{.Generic}}
{{- $dispatcher := .Dispatcher }}
{{- $generic := .Generic }}
{{- range .DTypes }}
	{{$dispatcher}}.Register(dtypes.{{.DType}}, {{$generic}}[{{.GoType}}])
{{- end }}
{{- end }}
}
`))
	fullPath := path.Join(must.M1(os.Getwd()), fileName)
	f := must.M1(os.Create(fullPath))
	must.M(registerTemplate.Execute(f, data))
	must.M(f.Close())

	cmd := exec.Command("gofmt", "-w", fullPath)
	klog.V(1).Infof("\t%s\n", cmd)
	must.M(cmd.Run())
	fmt.Printf("✅ generic_dispatcher:  \tsuccessfully generated %s\n", fullPath)
}
