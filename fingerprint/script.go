package fingerprint

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/funge/space"
)

// LoadScript reads a fingerprint definition from a Starlark file.
//
// The script must bind NAME to the fingerprint's name. Every global
// bound to a function under a single capital letter becomes that
// letter's instruction, called as fn(pop, push). A handler that raises
// an error reflects the calling pointer.
func LoadScript(path string) (s *Semantics, err error) {
	thread := &starlark.Thread{Name: path}
	globals, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, path, nil, nil)
	if err != nil {
		return
	}

	name, ok := globals["NAME"].(starlark.String)
	if !ok {
		err = fmt.Errorf("%w: %v", ErrScriptName, path)
		return
	}

	s = &Semantics{
		Name:         string(name),
		Code:         Code(string(name)),
		Instructions: map[rune]Instruction{},
	}

	for global, value := range globals {
		fn, ok := value.(*starlark.Function)
		if !ok || len(global) != 1 || global[0] < 'A' || global[0] > 'Z' {
			continue
		}
		s.Instructions[rune(global[0])] = scripted(fn)
	}

	return
}

// scripted wraps a Starlark function as an Instruction, bridging the
// pointer's stack through pop and push builtins.
func scripted(fn *starlark.Function) Instruction {
	return func(m Machine) {
		pop := starlark.NewBuiltin("pop", func(t *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			return starlark.MakeInt(int(m.Pop())), nil
		})
		push := starlark.NewBuiltin("push", func(t *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var v int
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &v); err != nil {
				return nil, err
			}
			m.Push(space.Cell(v))
			return starlark.None, nil
		})

		thread := &starlark.Thread{Name: fn.Name()}
		if _, err := starlark.Call(thread, fn, starlark.Tuple{pop, push}, nil); err != nil {
			m.Reflect()
		}
	}
}
