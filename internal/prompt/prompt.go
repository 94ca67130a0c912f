package prompt

import (
	"errors"
	"regexp"
	"strings"
)

// Placeholder is replaced by the diff text in both templates.
const Placeholder = "{{diff}}"

var ErrNoCommitLog = errors.New("no commit log generated")

const templateZH = `
现有以下的 git diff 输出：
<diff>
{{diff}}
</diff>

角色：你是一个根据 git diff 信息生成 git commit log 的工具.

以下是 git commit log 的书写前缀及其对应的使用场景：
* feat：新功能（feature）
* fix：修补bug
* docs：文档（documentation）
* style： 格式（不影响代码运行的变动）
* refactor：重构（即不是新增功能，也不是修改bug的代码变动）
* test：增加测试
* chore：构建过程或辅助工具的变动

最终的输出格式：
<output>
前缀: 本次变更的简要描述

* 修改内容的描述一
* 修改内容的描述二
...
</output>

其他要求：
* 使用中文
* 使用约定的前缀开始你的 commit log
* 只需要输出一个 commit log 即可
* 修改内容的描述不超过3条

请根据 git diff 的内容，直接给出最终的 commit log，将其包裹在 <output> 和 </output> 标签中即可`

const templateEN = `
There is the git diff output:
<diff>
{{diff}}
</diff>

Role: You are a tool that generates git commit log based on git diff information.

The following is the prefix of the git commit log and its corresponding usage scenario:
* feat: new feature
* fix: fix bug
* docs: documentation
* style: format (code changes that do not affect the running of the code)
* refactor: refactoring (code changes that are neither new features nor bug fixes)
* test: add test
* chore: changes in the build process or auxiliary tools

The final output format:
<output>
[prefix]: brief description of the change

* description of the modified content
* description of the modified content
...
</output>

Other requirements:
* Start your commit log with the agreed prefix
* Only one commit log is required
* The description of the modified content does not exceed 3

Please give the final commit log directly according to the above requirements, and wrap it in the <output> and </output> tags.`

// Prefixes are the commit types both templates allow.
var Prefixes = []string{"feat", "fix", "docs", "style", "refactor", "test", "chore"}

// Template returns the instruction text for language; anything but "zh" is English.
func Template(language string) string {
	if language == "zh" {
		return templateZH
	}
	return templateEN
}

// Render embeds diff into the template for language.
func Render(diff, language string) string {
	return strings.Replace(Template(language), Placeholder, diff, 1)
}

var reOutput = regexp.MustCompile(`(?s)<output>(.*?)</output>`)

// ExtractCommitLog returns the trimmed text between the first <output> and </output>.
func ExtractCommitLog(reply string) (string, error) {
	m := reOutput.FindStringSubmatch(reply)
	if len(m) != 2 {
		return "", ErrNoCommitLog
	}
	log := strings.TrimSpace(m[1])
	if log == "" {
		return "", ErrNoCommitLog
	}
	return log, nil
}
