package project

import (
	"github.com/rotisserie/eris"

	"github.com/piwi3910/BarCut/internal/model"
)

// FileExtension is the extension of saved project files.
const FileExtension = ".barcut"

// SaveProject writes a project, including its last plan if any.
func SaveProject(path string, proj model.Project) error {
	return writeJSON(path, proj)
}

// LoadProject reads a project file.
func LoadProject(path string) (model.Project, error) {
	var proj model.Project
	if err := readJSON(path, &proj); err != nil {
		return model.Project{}, eris.Wrap(err, "load project")
	}
	if proj.Pieces == nil {
		proj.Pieces = []model.Piece{}
	}
	return proj, nil
}
