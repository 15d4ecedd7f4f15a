package catalog

import (
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/execution"
	"github.com/TruZillah/Assessment-GliderAI/internal/domain/value"
)

func tc(n int, expected value.Value, args ...value.Value) execution.TestCase {
	return execution.TestCase{Number: n, Args: args, Expected: expected}
}

var problems = []Problem{
	{
		Name:        "summation",
		Title:       "Sum of Two Integers",
		Description: "Implement summation(a, b) that returns the sum of two integers.",
		Signature:   "def summation(a, b):",
		EntryPoint:  "summation",
		Stubs: map[execution.Language]string{
			execution.LanguagePython:     "def summation(a, b):\n    # Write your code here\n    pass\n",
			execution.LanguageJavaScript: "function summation(a, b) {\n    // Write your code here\n}\n",
			execution.LanguageJava:       "public class Solution {\n    public int summation(int a, int b) {\n        // Write your code here\n        return 0;\n    }\n}\n",
			execution.LanguageCPP:        "int summation(int a, int b) {\n    // Write your code here\n    return 0;\n}\n",
		},
		Tests: []execution.TestCase{
			tc(1, value.Int(5), value.Int(2), value.Int(3)),
			tc(2, value.Int(0), value.Int(-1), value.Int(1)),
			tc(3, value.Int(0), value.Int(0), value.Int(0)),
		},
	},
	{
		Name:        "palindrome",
		Title:       "Is Palindrome",
		Description: "Implement is_palindrome(s) that checks if a string is a palindrome (ignore non-alphanumeric, case-insensitive).",
		Signature:   "def is_palindrome(s):",
		EntryPoint:  "is_palindrome",
		Stubs: map[execution.Language]string{
			execution.LanguagePython:     "def is_palindrome(s):\n    # Write your code here\n    pass\n",
			execution.LanguageJavaScript: "function is_palindrome(s) {\n    // Write your code here\n}\n",
			execution.LanguageJava:       "public class Solution {\n    public boolean is_palindrome(String s) {\n        // Write your code here\n        return false;\n    }\n}\n",
			execution.LanguageCPP:        "bool is_palindrome(string s) {\n    // Write your code here\n    return false;\n}\n",
		},
		Tests: []execution.TestCase{
			tc(1, value.Bool(true), value.Str("A man, a plan, a canal: Panama")),
			tc(2, value.Bool(false), value.Str("race a car")),
			tc(3, value.Bool(true), value.Str("")),
		},
	},
	{
		Name:        "two_sum",
		Title:       "Two Sum",
		Description: "Implement two_sum(nums, target) that returns indices [i,j] summing to target, or [-1,-1].",
		Signature:   "def two_sum(nums, target):",
		EntryPoint:  "two_sum",
		Stubs: map[execution.Language]string{
			execution.LanguagePython:     "def two_sum(nums, target):\n    # Write your code here\n    pass\n",
			execution.LanguageJavaScript: "function two_sum(nums, target) {\n    // Write your code here\n}\n",
			execution.LanguageJava:       "public class Solution {\n    public int[] two_sum(int[] nums, int target) {\n        // Write your code here\n        return new int[]{-1, -1};\n    }\n}\n",
			execution.LanguageCPP:        "vector<int> two_sum(vector<int>& nums, int target) {\n    // Write your code here\n    return {-1, -1};\n}\n",
		},
		Tests: []execution.TestCase{
			tc(1, value.Ints(0, 1), value.Ints(2, 7, 11, 15), value.Int(9)),
			tc(2, value.Ints(1, 2), value.Ints(3, 2, 4), value.Int(6)),
			tc(3, value.Ints(0, 1), value.Ints(3, 3), value.Int(6)),
			tc(4, value.Ints(-1, -1), value.Ints(1, 2, 3), value.Int(10)),
		},
	},
	{
		Name:        "binary_search",
		Title:       "Binary Search",
		Description: "Implement binary_search(nums, target) returning index or -1. nums is sorted ascending.",
		Signature:   "def binary_search(nums, target):",
		EntryPoint:  "binary_search",
		Tests: []execution.TestCase{
			tc(1, value.Int(3), value.Ints(1, 2, 3, 4, 5), value.Int(4)),
			tc(2, value.Int(-1), value.Ints(1, 2, 3, 4, 5), value.Int(6)),
		},
	},
	{
		Name:        "max_subarray",
		Title:       "Maximum Subarray Sum",
		Description: "Implement max_subarray(nums) returning the maximum possible subarray sum (Kadane's algorithm).",
		Signature:   "def max_subarray(nums):",
		EntryPoint:  "max_subarray",
		Tests: []execution.TestCase{
			tc(1, value.Int(6), value.Ints(-2, 1, -3, 4, -1, 2, 1, -5, 4)),
			tc(2, value.Int(1), value.Ints(1)),
			tc(3, value.Int(-1), value.Ints(-1, -2, -3)),
		},
	},
	{
		Name:        "frequency_sort",
		Title:       "Frequency Sort",
		Description: "Implement frequency_sort(s) that sorts characters by frequency (desc), then alphabetically (asc).",
		Signature:   "def frequency_sort(s):",
		EntryPoint:  "frequency_sort",
		Tests: []execution.TestCase{
			tc(1, value.Str("eert"), value.Str("tree")),
			tc(2, value.Str("aaaccc"), value.Str("cccaaa")),
			tc(3, value.Str(""), value.Str("")),
		},
	},
	{
		Name:        "balanced_brackets",
		Title:       "Balanced Brackets",
		Description: "Implement balanced_brackets(s) that checks if brackets are balanced: (), {}, []",
		Signature:   "def balanced_brackets(s):",
		EntryPoint:  "balanced_brackets",
		Tests: []execution.TestCase{
			tc(1, value.Bool(true), value.Str("()[]{}")),
			tc(2, value.Bool(false), value.Str("(]")),
			tc(3, value.Bool(true), value.Str("([{}])")),
		},
	},
	{
		Name:        "climb_stairs",
		Title:       "Climbing Stairs",
		Description: "Implement climb_stairs(n) where you can climb 1 or 2 steps at a time; return number of distinct ways.",
		Signature:   "def climb_stairs(n):",
		EntryPoint:  "climb_stairs",
		Tests: []execution.TestCase{
			tc(1, value.Int(2), value.Int(2)),
			tc(2, value.Int(3), value.Int(3)),
		},
	},
	{
		Name:        "coin_change",
		Title:       "Coin Change (Min Coins)",
		Description: "Implement coin_change(coins, amount) to return the minimum number of coins to make up amount, or -1 if not possible.",
		Signature:   "def coin_change(coins, amount):",
		EntryPoint:  "coin_change",
		Tests: []execution.TestCase{
			tc(1, value.Int(3), value.Ints(1, 2, 5), value.Int(11)),
			tc(2, value.Int(-1), value.Ints(2), value.Int(3)),
		},
	},
	{
		Name:        "product_except_self",
		Title:       "Product of Array Except Self",
		Description: "Implement product_except_self(nums) without using division, return an array where each element is the product of all other elements.",
		Signature:   "def product_except_self(nums):",
		EntryPoint:  "product_except_self",
		Tests: []execution.TestCase{
			tc(1, value.Ints(24, 12, 8, 6), value.Ints(1, 2, 3, 4)),
			tc(2, value.Ints(6, 0, 0, 0), value.Ints(0, 1, 2, 3)),
		},
	},
	{
		Name:        "kth_largest",
		Title:       "Kth Largest Element",
		Description: "Implement kth_largest(nums, k) returning the k-th largest element in the array.",
		Signature:   "def kth_largest(nums, k):",
		EntryPoint:  "kth_largest",
		Tests: []execution.TestCase{
			tc(1, value.Int(5), value.Ints(3, 2, 1, 5, 6, 4), value.Int(2)),
			tc(2, value.Int(4), value.Ints(3, 2, 3, 1, 2, 4, 5, 5, 6), value.Int(4)),
		},
	},
	{
		Name:        "longest_substring_without_repeating_characters",
		Title:       "Longest Substring Without Repeating Characters",
		Description: "Implement longest_substring_without_repeating_characters(s) and return its length.",
		Signature:   "def longest_substring_without_repeating_characters(s):",
		EntryPoint:  "longest_substring_without_repeating_characters",
		Tests: []execution.TestCase{
			tc(1, value.Int(3), value.Str("abcabcbb")),
			tc(2, value.Int(1), value.Str("bbbbb")),
			tc(3, value.Int(3), value.Str("pwwkew")),
		},
	},
}
