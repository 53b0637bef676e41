package composer

import (
	"fmt"
	"strings"

	"github.com/shouni/codevision-kit/pkg/domain"
)

// composeSingleImage は 1 枚の画像からコードを生成する指示文を組み立てます。
func composeSingleImage(in domain.ComposeInput) (*domain.GenerationRequest, error) {
	if err := requireImages(in); err != nil {
		return nil, err
	}

	canned, ok := imagePromptInstructions[in.Options.PromptType]
	if !ok {
		canned = imagePromptInstructions[defaultImagePromptType]
	}
	instruction, err := resolveInstruction(in.Options, canned)
	if err != nil {
		return nil, err
	}
	framework := targetOrDefault(in.Options.Target, defaultFramework)

	requirements := []string{
		"Write clean, production-ready code",
		"Include all necessary imports and dependencies",
		"Add helpful comments",
	}
	if in.Options.Responsive {
		requirements = append(requirements, "Make the design responsive for mobile, tablet, and desktop")
	}
	if in.Options.Animations {
		requirements = append(requirements, "Add smooth animations and transitions")
	}
	requirements = append(requirements,
		"Follow best practices for "+framework,
		"Ensure the code is ready to run",
	)

	b := &requestBuilder{}
	b.paragraph(instruction).
		list("TARGET FRAMEWORK: "+framework+"\nREQUIREMENTS:", requirements, false).
		paragraph("Provide complete, working code that can be directly used.")
	return b.build(in, framework)
}

// composeMultiImage は複数画面のスクリーンショットからアプリ一式を生成する指示文を組み立てます。
// 画像ごとの指示は書かず、枚数とチェックリストだけを埋め込みます。
func composeMultiImage(in domain.ComposeInput) (*domain.GenerationRequest, error) {
	if err := requireImages(in); err != nil {
		return nil, err
	}

	custom, err := resolveInstruction(in.Options, "")
	if err != nil {
		return nil, err
	}
	generationType := targetOrDefault(in.Options.Target, defaultGenerationType)

	checklist := []string{
		"All pages/screens shown in the images",
		"Navigation between pages",
		"Consistent styling across all pages",
		"Proper project structure",
		"All necessary files (components, styles, etc.)",
		"README with setup instructions",
	}
	if in.Options.Responsive {
		checklist = append(checklist, "Responsive layout for mobile, tablet, and desktop")
	}
	if in.Options.Animations {
		checklist = append(checklist, "Smooth animations and transitions")
	}

	b := &requestBuilder{}
	b.paragraph(fmt.Sprintf("Analyze these %d images which show different parts/pages of an application.", len(in.Images))).
		paragraph(custom).
		list(fmt.Sprintf("Create a complete %s that includes:", generationType), checklist, true).
		paragraph("Make it production-ready and well-organized.")
	return b.build(in, generationType)
}

// composeRefactor は既存コードのリファクタリング指示を組み立てます。
// 現行コードはラベル付きセクションにそのまま埋め込みます。
func composeRefactor(in domain.ComposeInput) (*domain.GenerationRequest, error) {
	if err := requireText(in, "current code"); err != nil {
		return nil, err
	}

	goals := nonEmpty(in.Options.RefactorGoals)
	if len(goals) == 0 {
		goals = []string{defaultRefactorGoal}
	}
	instruction, err := resolveInstruction(in.Options,
		"Refactor this code with the following goals: "+strings.Join(goals, ", "))
	if err != nil {
		return nil, err
	}
	target := strings.TrimSpace(in.Options.Target)

	b := &requestBuilder{}
	b.paragraph(instruction)
	if target != "" {
		b.paragraph("TARGET FRAMEWORK: " + target)
	}
	b.section("CURRENT CODE", in.Text).
		list("Provide:", []string{
			"Refactored code with improvements",
			"Explanation of changes made",
			"Before/after comparison",
		}, true)

	switch n := len(in.Images); {
	case n == 1:
		b.paragraph("VISUAL REFERENCE: Use this as design inspiration")
	case n > 1:
		b.paragraph(fmt.Sprintf("VISUAL REFERENCE: Use these %d images as design inspiration", n))
	}
	return b.build(in, target)
}

// composeDocToApp は API ドキュメントや要件からアプリを生成する指示を組み立てます。
// このユースケースだけはシステム指示と生成パラメータを伴います。
func composeDocToApp(in domain.ComposeInput) (*domain.GenerationRequest, error) {
	if err := requireText(in, "documentation"); err != nil {
		return nil, err
	}

	complexity := in.Options.Complexity
	if complexity == 0 {
		complexity = defaultComplexity
	}
	if complexity < minComplexity || complexity > maxComplexity {
		return nil, fmt.Errorf("%w: complexity must be between %d and %d, got %d",
			domain.ErrInvalidInput, minComplexity, maxComplexity, complexity)
	}

	instruction, err := resolveInstruction(in.Options,
		"You are an expert full-stack developer. Analyze the following documentation and generate a complete, production-ready application.")
	if err != nil {
		return nil, err
	}
	appType := targetOrDefault(in.Options.Target, defaultApplicationType)

	requirements := []string{"Application Type: " + appType}
	if in.Options.IncludeTests {
		requirements = append(requirements, "Include comprehensive tests")
	}
	if in.Options.IncludeDocs {
		requirements = append(requirements, "Include detailed documentation")
	}
	if in.Options.IncludeErrorHandling {
		requirements = append(requirements, "Include robust error handling")
	}
	requirements = append(requirements, fmt.Sprintf("Complexity Level: %d/%d", complexity, maxComplexity))

	b := &requestBuilder{}
	b.paragraph(instruction).
		section("DOCUMENTATION", in.Text).
		list("REQUIREMENTS:", requirements, false).
		list("Generate a complete application with:", []string{
			"Well-structured, clean code",
			"Proper file organization",
			"Requirements/dependencies file",
			"README with setup instructions",
			"Example usage",
			"Comments explaining key logic",
		}, true).
		paragraph("Make it production-ready, following best practices for the chosen framework.\nProvide the complete code for each file clearly labeled.")

	// 入力はドキュメントだけで、画像はモデルに渡さない
	in.Images = nil
	req, err := b.build(in, appType)
	if err != nil {
		return nil, err
	}
	req.SystemInstruction = docSystemInstruction
	req.Params = &domain.GenerationParams{
		Temperature:     docTemperature,
		MaxOutputTokens: docMaxOutputToken,
	}
	return req, nil
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
