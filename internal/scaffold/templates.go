package scaffold

// seedFile is one file created when initializing a project.
type seedFile struct {
	folder   string
	filename string
	content  string
}

// paperSeeds is the starting tree for an academic paper project.
var paperSeeds = []seedFile{
	{"abstracts", "abstract.md", "# Abstract\n\nSummary of the paper for different journals or conferences.\n"},
	{"abstracts", "keywords.md", "# Keywords\n\nKeywords to define the scope and field.\n"},
	{"sections", "core_question.md", "# Core Research Question\n\nDefine the main research question or hypothesis here.\n"},
	{"sections", "contribution.md", "# Contribution\n\nDescribe the main contribution or novelty of the paper.\n"},
	{"sections", "introduction.md", "# Introduction\n\nIntroduction to the paper's subject and goals.\n"},
	{"sections", "literature_review.md", "# Literature Review\n\nOverview of existing research.\n"},
	{"sections", "methodology.md", "# Methodology\n\nExplanation of research methods or processes.\n"},
	{"sections", "results.md", "# Results\n\nFindings and data from experiments, surveys, etc.\n"},
	{"sections", "discussion.md", "# Discussion\n\nDiscussion of the results and their implications.\n"},
	{"sections", "conclusion.md", "# Conclusion\n\nSummary and closing thoughts.\n"},
	{"sections", "future_work.md", "# Future Work\n\nSuggestions for future research.\n"},
	{"figures", ".gitkeep", ""},
	{"tables", ".gitkeep", ""},
	{"bibliography", "references.bib", "% References for citations in BibTeX format.\n"},
	{"bibliography", "notes.md", "# Annotated Bibliography\n\nResearch notes and annotations.\n"},
	{"drafts", "draft_01.md", "# Draft 01\n\nInitial draft of the paper.\n"},
	{"drafts", "draft_final.md", "# Final Draft\n\nFinal draft before submission.\n"},
	{"templates", "template.tex", "% Main LaTeX template for publication.\n\\documentclass{article}\n\\begin{document}\n\\title{Your Paper Title}\n\\maketitle\n\\end{document}\n"},
}

// bookSeeds is the starting tree for a book project.
var bookSeeds = []seedFile{
	{"chapters", "cover.md", "# Cover\n\nTitle, author, and cover copy.\n"},
	{"chapters", "back-cover.md", "# Back Cover\n\nBlurb and praise quotes.\n"},
	{"chapters", "chapter-1.md", "# Chapter 1\n\nOpening chapter.\n"},
	{"chapters", "epilogue.md", "# Epilogue\n\nClosing words.\n"},
	{"book", ".gitkeep", ""},
	{"outline", "general_outline.md", "# General Outline\n\nHigh-level arc of the book.\n"},
	{"outline", "chapter_synopsis.md", "# Chapter Synopsis\n\nOne paragraph per chapter.\n"},
	{"worldbuilding", "geography.md", "# Geography\n\nPlaces and settings.\n"},
	{"worldbuilding", "history.md", "# History\n\nBackstory and timeline.\n"},
	{"characters", "main_characters.md", "# Main Characters\n\nProfiles of the principal cast.\n"},
	{"behaviors", "default.txt", "You are a writing assistant for this book. Use the attached project files as canon.\n"},
}
