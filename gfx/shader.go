// This file is part of musicvis.
//
// musicvis is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// musicvis is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with musicvis.  If not, see <https://www.gnu.org/licenses/>.

package gfx

import (
	"fmt"
	"strings"
)

// CompileProgram compiles the vertex and fragment source and links them into a
// new program. A failure to compile or link is returned as a *ShaderError.
//
// No resources are left behind on failure.
func CompileProgram(ctx Context, vertSource string, fragSource string) (Program, error) {
	vert, err := compileShader(ctx, StageVertex, vertSource)
	if err != nil {
		return 0, err
	}
	defer ctx.DeleteShader(vert)

	frag, err := compileShader(ctx, StageFragment, fragSource)
	if err != nil {
		return 0, err
	}
	defer ctx.DeleteShader(frag)

	prg := ctx.CreateProgram()
	ctx.AttachShader(prg, vert)
	ctx.AttachShader(prg, frag)
	ctx.LinkProgram(prg)

	if !ctx.ProgramLinked(prg) {
		log := infoLog(ctx.ProgramInfoLog(prg), "program failed to link")
		ctx.DeleteProgram(prg)
		return 0, &ShaderError{Stage: StageLink, Log: log}
	}

	if err := ctx.Err(); err != nil {
		ctx.DeleteProgram(prg)
		return 0, fmt.Errorf("gfx: compile program: %w", err)
	}

	return prg, nil
}

func compileShader(ctx Context, stage ShaderStage, source string) (Shader, error) {
	sh := ctx.CreateShader(stage)
	ctx.ShaderSource(sh, source)
	ctx.CompileShader(sh)

	if !ctx.ShaderCompiled(sh) {
		log := infoLog(ctx.ShaderInfoLog(sh), fmt.Sprintf("%s shader failed to compile", stage))
		ctx.DeleteShader(sh)
		return 0, &ShaderError{Stage: stage, Log: log}
	}

	return sh, nil
}

// infoLog removes trailing NUL characters and whitespace from an info log.
// some drivers return an empty log on failure in which case the alternative
// string is used.
func infoLog(log string, alt string) string {
	log = strings.TrimRight(log, "\x00 \t\r\n")
	if log == "" {
		return alt
	}
	return log
}
