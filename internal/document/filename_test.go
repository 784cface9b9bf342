package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilename(t *testing.T) {
	tests := []struct {
		name      string
		person    string
		fileLabel string
		template  string
		ext       string
		want      string
	}{
		{name: "basic", person: "Jane Doe", fileLabel: "fullstack", template: "modern", ext: "pdf", want: "Jane_Doe_fullstack_modern_CV_2025.pdf"},
		{name: "collapses spaces", person: "  Jane   Q  Doe ", fileLabel: "ai", template: "bold", ext: "rtf", want: "Jane_Q_Doe_ai_bold_CV_2025.rtf"},
		{name: "keeps accents", person: "José Núñez", fileLabel: "general", template: "classic", ext: "pdf", want: "José_Núñez_general_classic_CV_2025.pdf"},
		{name: "drops path characters", person: "A/B\\C: D", fileLabel: "data scientist", template: "minimal", ext: "pdf", want: "ABC_D_data_scientist_minimal_CV_2025.pdf"},
		{name: "empty name", person: "", fileLabel: "general", template: "modern", ext: "pdf", want: "CV_general_modern_CV_2025.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.person, tt.fileLabel, tt.template, 2025, tt.ext))
		})
	}
}
