package catalog

import "github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"

// hints carries optional per-problem, per-language guidance shown alongside
// the stub. Problems without an entry simply have no hints.
var hints = map[string]map[execution.Language]Hint{
	"summation": {
		execution.LanguagePython: {
			Bullets: []string{
				"This is a simple function that returns the sum of two integers.",
				"In Python, the + operator works directly on integers with no overflow concerns.",
				"Python integers have arbitrary precision - they can grow as large as memory allows.",
				"Simply return a + b. No need for type checking or edge cases.",
			},
			Pseudocode: "def summation(a, b):\n    return a + b\n",
		},
		execution.LanguageJavaScript: {
			Bullets: []string{
				"Be careful with implicit type coercion; ensure inputs are numbers.",
				"Return a + b; Node.js will handle number addition.",
			},
			Pseudocode: "function summation(a, b) {\n    return a + b;\n}\n",
		},
		execution.LanguageJava: {
			Bullets: []string{
				"Use primitive ints to avoid boxing overhead.",
				"Return a + b from the method.",
			},
			Pseudocode: "public int summation(int a, int b) {\n    return a + b;\n}\n",
		},
		execution.LanguageCPP: {
			Bullets: []string{
				"Use int (or long) depending on expected range.",
				"Return a + b from the function.",
			},
			Pseudocode: "int summation(int a, int b) {\n    return a + b;\n}\n",
		},
	},
	"palindrome": {
		execution.LanguagePython: {
			Bullets: []string{
				"A palindrome reads the same forward and backward.",
				"Filter the string to keep only alphanumeric characters, lowercased.",
				"Use two pointers from both ends and compare while moving inward.",
				"The empty string is considered a palindrome.",
			},
			Pseudocode: "def is_palindrome(s):\n    t = [c.lower() for c in s if c.isalnum()]\n    i, j = 0, len(t) - 1\n    while i < j:\n        if t[i] != t[j]:\n            return False\n        i += 1\n        j -= 1\n    return True\n",
		},
		execution.LanguageJavaScript: {
			Bullets: []string{
				"Normalize with regex: keep alphanumeric and toLowerCase().",
				"Use two indices or reverse the string and compare.",
			},
			Pseudocode: "function is_palindrome(s) {\n    const t = s.replace(/[^a-z0-9]/gi, \"\").toLowerCase();\n    return t === t.split(\"\").reverse().join(\"\");\n}\n",
		},
		execution.LanguageJava: {
			Bullets: []string{
				"Use Character.isLetterOrDigit and Character.toLowerCase for normalization.",
				"Use a two-pointer approach on a char array.",
			},
			Pseudocode: "public boolean is_palindrome(String s) {\n    StringBuilder sb = new StringBuilder();\n    for (char c : s.toCharArray()) if (Character.isLetterOrDigit(c)) sb.append(Character.toLowerCase(c));\n    String t = sb.toString();\n    return new StringBuilder(t).reverse().toString().equals(t);\n}\n",
		},
		execution.LanguageCPP: {
			Bullets: []string{
				"Use isalnum from <cctype> and tolower for normalization.",
				"Build a filtered string and compare with its reverse.",
			},
			Pseudocode: "bool is_palindrome(string s) {\n    string t;\n    for (char c : s) if (isalnum((unsigned char)c)) t.push_back(tolower((unsigned char)c));\n    return equal(t.begin(), t.begin() + t.size() / 2, t.rbegin());\n}\n",
		},
	},
	"two_sum": {
		execution.LanguagePython: {
			Bullets: []string{
				"Track each value's index in a dict as you scan.",
				"For each x, check whether target - x was already seen.",
				"Return [-1, -1] when no pair sums to the target.",
			},
			Pseudocode: "def two_sum(nums, target):\n    seen = {}\n    for i, x in enumerate(nums):\n        if target - x in seen:\n            return [seen[target - x], i]\n        seen[x] = i\n    return [-1, -1]\n",
		},
		execution.LanguageJavaScript: {
			Bullets: []string{
				"Use a Map from value to index.",
				"One pass: look up the complement before inserting the current value.",
			},
			Pseudocode: "function two_sum(nums, target) {\n    const seen = new Map();\n    for (let i = 0; i < nums.length; i++) {\n        if (seen.has(target - nums[i])) return [seen.get(target - nums[i]), i];\n        seen.set(nums[i], i);\n    }\n    return [-1, -1];\n}\n",
		},
		execution.LanguageJava: {
			Bullets: []string{
				"Use a HashMap<Integer, Integer> from value to index.",
				"Look up the complement before inserting the current value.",
			},
			Pseudocode: "public int[] two_sum(int[] nums, int target) {\n    Map<Integer, Integer> seen = new HashMap<>();\n    for (int i = 0; i < nums.length; i++) {\n        if (seen.containsKey(target - nums[i])) return new int[]{seen.get(target - nums[i]), i};\n        seen.put(nums[i], i);\n    }\n    return new int[]{-1, -1};\n}\n",
		},
		execution.LanguageCPP: {
			Bullets: []string{
				"Use an unordered_map<int, int> from value to index.",
				"Look up the complement before inserting the current value.",
			},
			Pseudocode: "vector<int> two_sum(vector<int>& nums, int target) {\n    unordered_map<int, int> seen;\n    for (int i = 0; i < (int)nums.size(); i++) {\n        auto it = seen.find(target - nums[i]);\n        if (it != seen.end()) return {it->second, i};\n        seen[nums[i]] = i;\n    }\n    return {-1, -1};\n}\n",
		},
	},
	"max_subarray": {
		execution.LanguagePython: {
			Bullets: []string{
				"Kadane's algorithm runs in linear time.",
				"Track the best sum ending at the current element: cur = max(x, cur + x).",
				"Track the best sum overall: best = max(best, cur).",
			},
			Pseudocode: "def max_subarray(nums):\n    cur = best = nums[0]\n    for x in nums[1:]:\n        cur = max(x, cur + x)\n        best = max(best, cur)\n    return best\n",
		},
	},
	"binary_search": {
		execution.LanguagePython: {
			Bullets: []string{
				"Halve the search interval each step on sorted input.",
				"Watch the loop condition (lo <= hi) and the mid calculation.",
			},
			Pseudocode: "def binary_search(nums, target):\n    lo, hi = 0, len(nums) - 1\n    while lo <= hi:\n        mid = (lo + hi) // 2\n        if nums[mid] == target:\n            return mid\n        if nums[mid] < target:\n            lo = mid + 1\n        else:\n            hi = mid - 1\n    return -1\n",
		},
	},
	"balanced_brackets": {
		execution.LanguagePython: {
			Bullets: []string{
				"A stack handles nesting: push openers, pop on closers.",
				"The string is balanced iff every closer matches the top opener and the stack ends empty.",
			},
			Pseudocode: "def balanced_brackets(s):\n    pairs = {')': '(', ']': '[', '}': '{'}\n    stack = []\n    for c in s:\n        if c in '([{':\n            stack.append(c)\n        elif not stack or stack.pop() != pairs[c]:\n            return False\n    return not stack\n",
		},
	},
}
