// Package testutil holds helpers shared by package tests.
package testutil

import (
	"fmt"
	"reflect"
)

// SharedMemory walks two object graphs and returns the paths of every
// non-empty slice, map or pointer in b that is reachable from a. It checks
// reference identity, not equality: two equal but distinct slices are fine.
func SharedMemory(a, b any) []string {
	seen := map[uintptr]string{}
	collect(reflect.ValueOf(a), "a", seen)

	var shared []string
	check(reflect.ValueOf(b), "b", seen, &shared)
	return shared
}

func collect(v reflect.Value, path string, seen map[uintptr]string) {
	walk(v, path, func(p uintptr, path string) {
		if _, ok := seen[p]; !ok {
			seen[p] = path
		}
	})
}

func check(v reflect.Value, path string, seen map[uintptr]string, shared *[]string) {
	walk(v, path, func(p uintptr, path string) {
		if origin, ok := seen[p]; ok {
			*shared = append(*shared, fmt.Sprintf("%s aliases %s", path, origin))
		}
	})
}

func walk(v reflect.Value, path string, visit func(uintptr, string)) {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return
		}
		visit(v.Pointer(), path)
		walk(v.Elem(), "(*"+path+")", visit)
	case reflect.Interface:
		if !v.IsNil() {
			walk(v.Elem(), path, visit)
		}
	case reflect.Slice:
		if v.IsNil() || v.Cap() == 0 {
			return
		}
		visit(v.Pointer(), path)
		for i := 0; i < v.Len(); i++ {
			walk(v.Index(i), fmt.Sprintf("%s[%d]", path, i), visit)
		}
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			walk(v.Index(i), fmt.Sprintf("%s[%d]", path, i), visit)
		}
	case reflect.Map:
		if v.IsNil() {
			return
		}
		visit(v.Pointer(), path)
		iter := v.MapRange()
		for iter.Next() {
			walk(iter.Value(), fmt.Sprintf("%s[%v]", path, iter.Key()), visit)
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			walk(v.Field(i), path+"."+v.Type().Field(i).Name, visit)
		}
	}
}
